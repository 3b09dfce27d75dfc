package lang

import (
	"cmp"
	"reflect"
)

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
)

// number is a primitive numeric value normalised across Go's numeric kinds.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

// toNumber converts a primitive numeric value. Boxed numbers are not unboxed.
func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case float64:
		return number{kind: numFloat, f: n}, true
	case int:
		return number{kind: numInt, i: int64(n), f: float64(n)}, true
	case int64:
		return number{kind: numInt, i: n, f: float64(n)}, true
	}
	if v == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int(), f: float64(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint(), f: float64(rv.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

// Float returns the numeric value of v as a float64. Boxed numbers are
// unboxed; ok is false for non-numbers.
func Float(v any) (f float64, ok bool) {
	n, ok := toNumber(unbox(v))
	return n.f, ok
}

func (n number) isNaN() bool { return n.kind == numFloat && n.f != n.f }

func (n number) equal(o number) bool {
	return n.compare(o) == 0 && !n.isNaN() && !o.isNaN()
}

func (n number) compare(o number) int {
	switch {
	case n.kind == numInt && o.kind == numInt:
		return cmp.Compare(n.i, o.i)
	case n.kind == numUint && o.kind == numUint:
		return cmp.Compare(n.u, o.u)
	case n.kind == numInt && o.kind == numUint:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), o.u)
	case n.kind == numUint && o.kind == numInt:
		if o.i < 0 {
			return 1
		}
		return cmp.Compare(n.u, uint64(o.i))
	}
	return cmp.Compare(n.f, o.f)
}
