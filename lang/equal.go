package lang

import (
	"reflect"
	"slices"
)

// IsEqual performs a deep comparison between value and other.
//
// The rules, in priority order:
//
//  1. Values with different tags are never equal.
//  2. Two NaNs are equal.
//  3. Plain objects are equal when their sorted own key sets are equal and
//     every key holds recursively equal values. A key present on one side
//     only makes them unequal, whatever it holds.
//  4. Arrays are equal when they have the same length and pairwise equal
//     elements in index order.
//  5. Other object-like values (boxed primitives, time.Time, regexps,
//     structs, pointers) are equal when their primitive conversions are
//     strictly equal. Structs of the same type without one compare field
//     by field, complex numbers part by part with NaN equal to NaN, and
//     pointers, maps and channels by identity.
//  6. Primitives and functions compare strictly. Numbers compare by value
//     across Go numeric kinds, so int(1) equals float64(1).
//
// IsEqual does not detect cycles.
func IsEqual(value, other any) bool {
	tag := Classify(value)
	if tag != Classify(other) {
		return false
	}
	if IsNaN(value) && IsNaN(other) {
		return true
	}

	switch tag {
	case TagPlainObject:
		return equalObjects(value, other)
	case TagArray:
		return equalArrays(value, other)
	case TagRegExp, TagObjectLike:
		return equalValueOf(value, other)
	}
	return strictEqual(value, other)
}

func equalObjects(value, other any) bool {
	if a, ok := value.(map[string]any); ok {
		if b, ok := other.(map[string]any); ok {
			if len(a) != len(b) {
				return false
			}
			for k, av := range a {
				bv, found := b[k]
				if !found || !IsEqual(av, bv) {
					return false
				}
			}
			return true
		}
	}

	keys := Keys(value)
	if !slices.Equal(keys, Keys(other)) {
		return false
	}
	for _, k := range keys {
		av, _ := Property(value, k)
		bv, _ := Property(other, k)
		if !IsEqual(av, bv) {
			return false
		}
	}
	return true
}

func equalArrays(value, other any) bool {
	if a, ok := value.([]any); ok {
		if b, ok := other.([]any); ok {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if !IsEqual(a[i], b[i]) {
					return false
				}
			}
			return true
		}
	}

	ra, rb := reflect.ValueOf(value), reflect.ValueOf(other)
	if ra.Len() != rb.Len() {
		return false
	}
	for i := 0; i < ra.Len(); i++ {
		if !IsEqual(ra.Index(i).Interface(), rb.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func equalValueOf(value, other any) bool {
	av, aok := ValueOf(value)
	bv, bok := ValueOf(other)
	if aok && bok {
		return strictEqual(av, bv)
	}
	if aok != bok {
		return false
	}

	ra, rb := reflect.ValueOf(value), reflect.ValueOf(other)
	if ra.Type() == rb.Type() {
		switch ra.Kind() {
		case reflect.Struct:
			return equalStructs(ra, rb)
		case reflect.Complex64, reflect.Complex128:
			return equalComplex(ra.Complex(), rb.Complex())
		}
	}
	return sameReference(value, other)
}

// equalStructs compares two structs of the same type field by field.
func equalStructs(x, y reflect.Value) bool {
	for i := range x.NumField() {
		if !equalFields(x.Field(i), y.Field(i)) {
			return false
		}
	}
	return true
}

// equalFields compares two values of the same type. Exported values go
// through IsEqual; unexported ones cannot be converted to an interface and
// are walked with reflect instead.
func equalFields(x, y reflect.Value) bool {
	if x.CanInterface() {
		return IsEqual(x.Interface(), y.Interface())
	}

	switch x.Kind() {
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return equalFloat(x.Float(), y.Float())
	case reflect.Complex64, reflect.Complex128:
		return equalComplex(x.Complex(), y.Complex())
	case reflect.String:
		return x.String() == y.String()
	case reflect.Struct:
		return equalStructs(x, y)
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.Len() {
			if !equalFields(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		for it := x.MapRange(); it.Next(); {
			yv := y.MapIndex(it.Key())
			if !yv.IsValid() || !equalFields(it.Value(), yv) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		ex, ey := x.Elem(), y.Elem()
		return ex.Type() == ey.Type() && equalFields(ex, ey)
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	}
	return false
}

func equalFloat(a, b float64) bool {
	return a == b || (a != a && b != b)
}

func equalComplex(a, b complex128) bool {
	return equalFloat(real(a), real(b)) && equalFloat(imag(a), imag(b))
}

// SameValueZero reports whether a and b are strictly equal, treating NaN as
// equal to NaN. Unlike [IsEqual] it never recurses: arrays, plain objects and
// other references are equal only when they are the same reference.
func SameValueZero(a, b any) bool {
	return strictEqual(a, b) || (isPrimitiveNaN(a) && isPrimitiveNaN(b))
}

func isPrimitiveNaN(v any) bool {
	n, ok := toNumber(v)
	return ok && n.isNaN()
}

// strictEqual compares primitives by value and everything else by reference.
// NaN is not strictly equal to itself.
func strictEqual(a, b any) bool {
	tag := Classify(a)
	if tag != Classify(b) {
		return false
	}

	switch tag {
	case TagUndefined, TagNull:
		return true
	case TagString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case TagBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case TagNumber:
		na, _ := toNumber(a)
		nb, _ := toNumber(b)
		return na.equal(nb)
	}
	return sameReference(a, b)
}

// sameReference reports identity for reference kinds and == for comparable
// values of any other kind.
func sameReference(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if ra.Comparable() && rb.Comparable() {
		return ra.Equal(rb)
	}
	return false
}
