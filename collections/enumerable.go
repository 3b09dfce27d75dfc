package collections

// Enumerable is the read-mostly surface of [Collection]. Predicates are
// loosely-typed selectors resolved by the iteratee package.
//
// Functions that only need to search or narrow a sequence can accept an
// Enumerable and stay decoupled from *Collection.
type Enumerable[T any] interface {
	// All returns a copy of the items.
	All() []T
	Count() int
	Each(fn func(T, int))
	IsEmpty() bool
	IsNotEmpty() bool
	ToSlice() []T

	// Find returns the first item the predicate selector accepts.
	Find(predicate any) (T, bool)
	FindIndex(predicate any, fromIndex ...int) int
	Some(predicate any) bool
	Every(predicate any) bool
	Contains(value any) bool

	Filter(predicate any) *Collection[T]
	Reject(predicate any) *Collection[T]
	Where(path any, value any) *Collection[T]
	Pluck(path any) *Collection[any]
}

var _ Enumerable[any] = (*Collection[any])(nil)
