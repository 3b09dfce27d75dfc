package iteratee

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
	"github.com/theory/jsonpath"
)

// Kind identifies the variant held by a [Selector].
type Kind uint8

const (
	// KindIdentity returns each value unchanged. It is also the fallback for
	// unrecognised selector shapes.
	KindIdentity Kind = iota
	// KindProperty extracts the value at a property path.
	KindProperty
	// KindMatches tests values with [lang.IsMatch] against a source object.
	KindMatches
	// KindMatchesProperty tests whether the value at a path deeply equals a
	// fixed value.
	KindMatchesProperty
	// KindFunc calls a user function.
	KindFunc
	// KindJSONPath extracts the first node selected by a JSONPath query.
	KindJSONPath
)

var kindNames = [...]string{
	KindIdentity:        "Identity",
	KindProperty:        "Property",
	KindMatches:         "Matches",
	KindMatchesProperty: "MatchesProperty",
	KindFunc:            "Func",
	KindJSONPath:        "JSONPath",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Func is a resolved selector. index and collection are the position of value
// and the collection it was taken from when called by an indexed helper;
// otherwise they are -1 and nil.
type Func func(value any, index int, collection any) any

// Selector is a resolved-shape selector. The zero value is the identity
// selector.
type Selector struct {
	kind   Kind
	path   []string
	source any
	value  any
	fn     Func
	query  *jsonpath.Path
}

// Kind returns the variant held by s.
func (s Selector) Kind() Kind { return s.kind }

// Identity returns the selector that maps every value to itself.
func Identity() Selector { return Selector{} }

// Property returns a selector extracting the value at path. path accepts the
// same forms as [object.Get].
func Property(path any) Selector {
	return Selector{kind: KindProperty, path: slices.Clone(object.Keys(path))}
}

// Matches returns a selector reporting whether a value matches source, as
// defined by [lang.IsMatch].
func Matches(source any) Selector {
	return Selector{kind: KindMatches, source: source}
}

// MatchesProperty returns a selector reporting whether the value at path is
// deeply equal to value.
func MatchesProperty(path any, value any) Selector {
	return Selector{kind: KindMatchesProperty, path: slices.Clone(object.Keys(path)), value: value}
}

// Call wraps fn. A nil fn yields the identity selector.
func Call(fn Func) Selector {
	if fn == nil {
		return Identity()
	}
	return Selector{kind: KindFunc, fn: fn}
}

// JSONPath returns a selector extracting the first node that the JSONPath
// expression expr selects, or [lang.Undefined] when it selects nothing.
// Parse failures wrap [object.ErrInvalidQuery].
func JSONPath(expr string) (Selector, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: %s: %v", object.ErrInvalidQuery, expr, err)
	}
	return Selector{kind: KindJSONPath, query: path}, nil
}

// From classifies a loosely-typed selector:
//
//   - a Selector is returned as is
//   - a string (or boxed string) is a property path
//   - a plain object is a partial-match source
//   - an array is a [path, value] pair; a missing value means nil and extra
//     elements are ignored
//   - a func of one of the shapes Func, func(any) any, func(any) bool,
//     func(any, int) bool or func(any, int, any) bool is called as is
//   - any other func taking (value[, index[, collection]]) and returning
//     one result, such as func(User) bool, is called through reflect
//
// Anything else, including nil and empty arrays, is the identity selector.
func From(v any) Selector {
	if lang.IsFunction(v) && reflect.ValueOf(v).IsNil() {
		return Identity()
	}
	switch s := v.(type) {
	case Selector:
		return s
	case nil:
		return Identity()
	case Func:
		return Call(s)
	case func(any, int, any) any:
		return Call(s)
	case func(any) any:
		return Call(func(value any, _ int, _ any) any { return s(value) })
	case func(any) bool:
		return Call(func(value any, _ int, _ any) any { return s(value) })
	case func(any, int) bool:
		return Call(func(value any, index int, _ any) any { return s(value, index) })
	case func(any, int, any) bool:
		return Call(func(value any, index int, collection any) any { return s(value, index, collection) })
	}

	if lang.IsFunction(v) {
		if fn, ok := callable(reflect.ValueOf(v)); ok {
			return Call(fn)
		}
		return Identity()
	}

	if lang.IsString(v) {
		if b, ok := v.(lang.ValueOfer); ok {
			v = b.ValueOf()
		}
		return Property(reflect.ValueOf(v).String())
	}

	switch lang.Classify(v) {
	case lang.TagPlainObject:
		return Matches(v)
	case lang.TagArray:
		pair := lang.ToSlice(v)
		if len(pair) == 0 {
			return Identity()
		}
		var value any
		if len(pair) > 1 {
			value = pair[1]
		}
		return MatchesProperty(pair[0], value)
	}
	return Identity()
}
