package lang

import (
	"math"
	"reflect"
)

// MaxSafeInteger is the largest integer a float64 represents exactly and
// unambiguously (2^53 - 1).
const MaxSafeInteger = 1<<53 - 1

// IsString reports whether v is a string or a boxed string.
func IsString(v any) bool { return Classify(unbox(v)) == TagString }

// IsNumber reports whether v is a number or a boxed number. NaN and the
// infinities are numbers.
func IsNumber(v any) bool { return Classify(unbox(v)) == TagNumber }

// IsBoolean reports whether v is a bool or a boxed bool.
func IsBoolean(v any) bool { return Classify(unbox(v)) == TagBoolean }

// IsNaN reports whether v is the numeric NaN sentinel, boxed or not.
func IsNaN(v any) bool {
	n, ok := toNumber(unbox(v))
	return ok && n.isNaN()
}

// IsFinite reports whether v is a primitive number that is neither NaN nor
// infinite. Boxed numbers are not finite.
func IsFinite(v any) bool {
	n, ok := toNumber(v)
	return ok && !math.IsNaN(n.f) && !math.IsInf(n.f, 0)
}

// IsNull reports whether v is nil or a typed nil pointer.
func IsNull(v any) bool { return Classify(v) == TagNull }

// IsUndefined reports whether v is the [Undefined] sentinel.
func IsUndefined(v any) bool { return v == Undefined }

// IsNil reports whether v is null or undefined.
func IsNil(v any) bool {
	t := Classify(v)
	return t == TagNull || t == TagUndefined
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool { return Classify(v) == TagArray }

// IsFunction reports whether v is a func value.
func IsFunction(v any) bool { return Classify(v) == TagFunction }

// IsRegExp reports whether v is a non-nil *regexp.Regexp.
func IsRegExp(v any) bool { return Classify(v) == TagRegExp }

// IsObject reports whether v is any non-primitive value: arrays, plain
// objects, functions, regexps and other object-like values. nil is not an
// object.
func IsObject(v any) bool {
	switch Classify(v) {
	case TagArray, TagPlainObject, TagFunction, TagRegExp, TagObjectLike:
		return true
	}
	return false
}

// IsObjectLike reports whether v is an object other than a function.
func IsObjectLike(v any) bool { return IsObject(v) && !IsFunction(v) }

// IsPlainObject reports whether v is a string-keyed map. Structs, pointers
// and the other builtin object kinds are excluded.
func IsPlainObject(v any) bool { return Classify(v) == TagPlainObject }

// IsLength reports whether v is a valid array-like length: a primitive
// integer, at least zero and strictly less than [MaxSafeInteger]. Loops
// driven by an externally supplied length must stop when it fails.
func IsLength(v any) bool {
	n, ok := toNumber(v)
	if !ok {
		return false
	}
	switch n.kind {
	case numInt:
		return n.i >= 0 && n.i < MaxSafeInteger
	case numUint:
		return n.u < MaxSafeInteger
	}
	return n.f == math.Trunc(n.f) && n.f >= 0 && n.f < MaxSafeInteger
}

// IsArrayLike reports whether v is not a function and has a valid length:
// strings, arrays, and plain objects whose "length" entry passes [IsLength].
func IsArrayLike(v any) bool {
	if IsFunction(v) || IsNil(v) {
		return false
	}
	length, ok := Property(v, "length")
	return ok && IsLength(length)
}

// IsTruthy reports whether v is truthy: everything except false, zero, NaN,
// the empty string, nil and [Undefined].
func IsTruthy(v any) bool {
	switch Classify(v) {
	case TagNull, TagUndefined:
		return false
	case TagBoolean:
		return reflect.ValueOf(v).Bool()
	case TagString:
		return reflect.ValueOf(v).Len() > 0
	case TagNumber:
		n, _ := toNumber(v)
		return !n.isNaN() && n.f != 0
	}
	return true
}

// Identity returns v unchanged.
func Identity(v any) any { return v }
