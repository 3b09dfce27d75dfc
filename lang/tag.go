package lang

import (
	"reflect"
	"regexp"
	"strconv"
	"time"
)

// Tag is the canonical type classification of a value.
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNull
	TagString
	TagNumber
	TagBoolean
	TagArray
	TagPlainObject
	TagFunction
	TagRegExp
	TagObjectLike
)

var tagNames = [...]string{
	TagUndefined:   "Undefined",
	TagNull:        "Null",
	TagString:      "String",
	TagNumber:      "Number",
	TagBoolean:     "Boolean",
	TagArray:       "Array",
	TagPlainObject: "PlainObject",
	TagFunction:    "Function",
	TagRegExp:      "RegExp",
	TagObjectLike:  "ObjectLike",
}

// String returns the tag name, e.g. "PlainObject".
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the absence sentinel. It is returned by lookups that find
// nothing and is distinct from nil, which classifies as [TagNull].
var Undefined any = undefined{}

// ValueOfer is implemented by object-like values that convert to a primitive.
// [IsEqual] compares two ValueOfer values by their ValueOf results.
type ValueOfer interface {
	ValueOf() any
}

// Boxed wraps a primitive in an object. It classifies as [TagObjectLike] but
// the primitive predicates ([IsString], [IsNumber], [IsBoolean]) answer for
// the wrapped value.
type Boxed struct {
	v any
}

// Box returns a boxed primitive holding v.
func Box(v any) *Boxed { return &Boxed{v: v} }

// ValueOf returns the wrapped primitive.
func (b *Boxed) ValueOf() any { return b.v }

// Classify returns the tag of v. It is total: every value maps to exactly one
// tag.
func Classify(v any) Tag {
	switch v.(type) {
	case nil:
		return TagNull
	case undefined:
		return TagUndefined
	case string:
		return TagString
	case bool:
		return TagBoolean
	case float64, int, int64, float32, int8, int16, int32, uint, uint8, uint16, uint32, uint64, uintptr:
		return TagNumber
	case []any:
		return TagArray
	case map[string]any:
		return TagPlainObject
	case *regexp.Regexp:
		if v.(*regexp.Regexp) == nil {
			return TagNull
		}
		return TagRegExp
	}
	return classifyKind(reflect.ValueOf(v))
}

var valueOferType = reflect.TypeFor[ValueOfer]()

func classifyKind(rv reflect.Value) Tag {
	if rv.Type().Implements(valueOferType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return TagNull
		}
		return TagObjectLike
	}
	switch rv.Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return TagPlainObject
		}
		return TagObjectLike
	case reflect.Func:
		return TagFunction
	case reflect.Pointer:
		if rv.IsNil() {
			return TagNull
		}
		return TagObjectLike
	}
	return TagObjectLike
}

// ValueOf returns the primitive conversion of an object-like value and
// whether one exists. time.Time converts to its Unix time in nanoseconds.
// Nil pointers have none.
func ValueOf(v any) (any, bool) {
	switch o := v.(type) {
	case ValueOfer:
		if isNilPointer(o) {
			return nil, false
		}
		return o.ValueOf(), true
	case time.Time:
		return o.UnixNano(), true
	case *time.Time:
		if o == nil {
			return nil, false
		}
		return o.UnixNano(), true
	}
	return nil, false
}

// unbox returns the primitive inside a boxed value, or v itself.
func unbox(v any) any {
	if o, ok := v.(ValueOfer); ok && !isNilPointer(o) {
		return o.ValueOf()
	}
	return v
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
