package iteratee

import (
	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
)

// Resolve returns the function selected by s. Every call builds a fresh
// closure; nothing is cached between calls.
func Resolve(s Selector) Func {
	switch s.kind {
	case KindIdentity:
		return identity
	case KindProperty:
		path := s.path
		return func(value any, _ int, _ any) any {
			return object.Get(value, path)
		}
	case KindMatches:
		source := s.source
		return func(value any, _ int, _ any) any {
			return lang.IsMatch(value, source)
		}
	case KindMatchesProperty:
		path, want := s.path, s.value
		return func(value any, _ int, _ any) any {
			return lang.IsEqual(object.Get(value, path), want)
		}
	case KindFunc:
		return s.fn
	case KindJSONPath:
		query := s.query
		return func(value any, _ int, _ any) any {
			nodes := query.Select(value)
			if len(nodes) == 0 {
				return lang.Undefined
			}
			return nodes[0]
		}
	}
	return identity
}

func identity(value any, _ int, _ any) any { return value }

// New resolves a loosely-typed selector. It is shorthand for
// Resolve(From(v)).
//
//	name := iteratee.New("user.name")
//	name(map[string]any{"user": map[string]any{"name": "Ann"}}, -1, nil) // → "Ann"
func New(v any) Func {
	return Resolve(From(v))
}

// Predicate resolves v and reports the truthiness of its result (see
// [lang.IsTruthy]).
func Predicate(v any) func(value any, index int, collection any) bool {
	fn := New(v)
	return func(value any, index int, collection any) bool {
		return lang.IsTruthy(fn(value, index, collection))
	}
}

// Negate returns a function reporting the opposite truthiness of fn.
func Negate(fn Func) Func {
	return func(value any, index int, collection any) any {
		return !lang.IsTruthy(fn(value, index, collection))
	}
}

// Apply calls the resolved selector v on a single value outside of any
// collection.
func Apply(v any, value any) any {
	return New(v)(value, -1, nil)
}
