package iteratee

import (
	"reflect"
)

var intType = reflect.TypeFor[int]()

// callable adapts a typed func such as func(User) bool or func(int, int)
// string. It must take one to three parameters (value, index, collection)
// and return one result; the index parameter must accept an int.
//
// At call time value and collection are passed when assignable to the
// parameter types. A value that is not assignable yields nil, which is
// falsy; an unassignable collection is passed as the zero value.
func callable(fv reflect.Value) (Func, bool) {
	t := fv.Type()
	n := t.NumIn()
	if t.IsVariadic() || n < 1 || n > 3 || t.NumOut() != 1 {
		return nil, false
	}
	if n > 1 && !intType.AssignableTo(t.In(1)) {
		return nil, false
	}

	return func(value any, index int, collection any) any {
		args := make([]reflect.Value, n)
		arg, ok := argument(value, t.In(0))
		if !ok {
			return nil
		}
		args[0] = arg
		if n > 1 {
			args[1] = reflect.ValueOf(index).Convert(t.In(1))
		}
		if n > 2 {
			if args[2], ok = argument(collection, t.In(2)); !ok {
				args[2] = reflect.Zero(t.In(2))
			}
		}
		return fv.Call(args)[0].Interface()
	}, true
}

// argument converts v to a call argument of type t.
func argument(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}
