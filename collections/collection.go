package collections

import (
	"slices"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c, err := collections.FromJSON[map[string]any](data)
//
// # Selectors
//
// Methods that take a predicate or selector accept every shape understood by
// [iteratee.From]:
//
//	users.Filter("active")                              // property path
//	users.Filter(map[string]any{"role": "admin"})       // partial match
//	users.Filter([]any{"address.city", "London"})       // [path, value] pair
//	users.Filter(func(u any) bool { return isVIP(u) })  // callable
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are package-level functions:
//
//	ids := collections.Map(users, func(u User, _ int) int { return u.ID })
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap adopts items without copying. Callers must own items.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.items)
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if !c.Has(index) {
		return zero, false
	}
	return c.items[index], true
}

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects (e.g. debugging) and returns c unchanged
// for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item. Returns the zero value and false when the
// collection is empty.
func (c *Collection[T]) First() (T, bool) { return c.Get(0) }

// Last returns the last item. Returns the zero value and false when the
// collection is empty.
func (c *Collection[T]) Last() (T, bool) { return c.Get(len(c.items) - 1) }

// Find returns the first item matching predicate.
// Returns the zero value and false when no item matches.
func (c *Collection[T]) Find(predicate any) (T, bool) {
	return arr.Find(c.items, predicate)
}

// FindLast returns the last item matching predicate.
func (c *Collection[T]) FindLast(predicate any) (T, bool) {
	return arr.FindLast(c.items, predicate)
}

// FindOrFail returns the first item matching predicate, or
// [ErrNoMatchingItems].
func (c *Collection[T]) FindOrFail(predicate any) (T, error) {
	item, ok := c.Find(predicate)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FindIndex returns the index of the first item matching predicate at or
// after fromIndex[0], or -1.
func (c *Collection[T]) FindIndex(predicate any, fromIndex ...int) int {
	return arr.FindIndex(c.items, predicate, fromIndex...)
}

// FindLastIndex returns the index of the last item matching predicate at or
// before fromIndex[0], or -1.
func (c *Collection[T]) FindLastIndex(predicate any, fromIndex ...int) int {
	return arr.FindLastIndex(c.items, predicate, fromIndex...)
}

// Some reports whether at least one item matches predicate.
func (c *Collection[T]) Some(predicate any) bool {
	return arr.Some(c.items, predicate)
}

// Every reports whether every item matches predicate.
func (c *Collection[T]) Every(predicate any) bool {
	return arr.Every(c.items, predicate)
}

// Contains reports whether the collection holds an item deeply equal to
// value (see [lang.IsEqual]).
//
//	c.Contains(map[string]any{"id": 1})
func (c *Collection[T]) Contains(value any) bool {
	for _, item := range c.items {
		if lang.IsEqual(item, value) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items matching predicate.
func (c *Collection[T]) Filter(predicate any) *Collection[T] {
	return wrap(arr.Filter(c.items, predicate))
}

// Reject returns a new collection without the items matching predicate.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(predicate any) *Collection[T] {
	return wrap(arr.Reject(c.items, predicate))
}

// Where keeps the items whose value at path deeply equals value.
//
//	users.Where("address.city", "London")
func (c *Collection[T]) Where(path any, value any) *Collection[T] {
	return c.Filter(iteratee.MatchesProperty(path, value))
}

// WhereNot is the complement of [Collection.Where].
func (c *Collection[T]) WhereNot(path any, value any) *Collection[T] {
	return c.Reject(iteratee.MatchesProperty(path, value))
}

// WhereMatch keeps the items that partially match source (see
// [lang.IsMatch]).
func (c *Collection[T]) WhereMatch(source any) *Collection[T] {
	return c.Filter(iteratee.Matches(source))
}

// Compact returns a new collection with the falsy items removed.
func (c *Collection[T]) Compact() *Collection[T] {
	return wrap(arr.Compact(c.items))
}

// Map returns a new Collection[any] with each item transformed by selector.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(selector any) *Collection[any] {
	return wrap(arr.Map(c.items, selector))
}

// Pluck extracts the value at path from every item. Items without the path
// yield [lang.Undefined].
//
//	users.Pluck("address.city")
func (c *Collection[T]) Pluck(path any) *Collection[any] {
	return c.Map(iteratee.Property(path))
}

// Unique returns a new collection without deeply-equal duplicates, keeping
// the first occurrence.
func (c *Collection[T]) Unique() *Collection[T] {
	return wrap(arr.UniqDeep(c.items))
}

// UniqueBy returns a new collection keeping the first item for every distinct
// key selector produces. Keys are compared with [lang.IsEqual].
func (c *Collection[T]) UniqueBy(selector any) *Collection[T] {
	key := iteratee.New(selector)
	var seen keyIndex
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if _, fresh := seen.ordinal(key(item, i, c.items)); fresh {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Diff returns the items of c whose selector key is not found among the keys
// of other. A nil selector compares the items themselves.
func (c *Collection[T]) Diff(other *Collection[T], selector any) *Collection[T] {
	return wrap(arr.DifferenceBy(c.items, other.items, selector))
}

// Intersect returns the unique items of c whose selector key is also found
// among the keys of other.
func (c *Collection[T]) Intersect(other *Collection[T], selector any) *Collection[T] {
	return wrap(arr.IntersectionBy(c.items, other.items, selector))
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := c.All()
	slices.Reverse(out)
	return wrap(out)
}

// Sort returns a new collection ordered by compare. The sort is stable:
// equal elements preserve their original order.
func (c *Collection[T]) Sort(compare func(a, b T) int) *Collection[T] {
	out := c.All()
	slices.SortStableFunc(out, compare)
	return wrap(out)
}

// SortBy returns a new collection stably sorted ascending by the key selector
// produces, ordered by [lang.Compare].
//
//	users.SortBy("age")
func (c *Collection[T]) SortBy(selector any) *Collection[T] {
	return c.sortBy(selector, false)
}

// SortByDesc is like [Collection.SortBy] but sorts descending.
func (c *Collection[T]) SortByDesc(selector any) *Collection[T] {
	return c.sortBy(selector, true)
}

func (c *Collection[T]) sortBy(selector any, desc bool) *Collection[T] {
	fn := iteratee.New(selector)
	keys := make([]any, len(c.items))
	for i, item := range c.items {
		keys[i] = fn(item, i, c.items)
	}
	order := make([]int, len(c.items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if desc {
			return lang.Compare(keys[b], keys[a])
		}
		return lang.Compare(keys[a], keys[b])
	})
	out := make([]T, len(order))
	for i, j := range order {
		out[i] = c.items[j]
	}
	return wrap(out)
}

// SortedIndexBy returns the lowest index at which value can be inserted while
// keeping c sorted by selector. c must already be sorted by selector, e.g.
// with [Collection.SortBy].
func (c *Collection[T]) SortedIndexBy(value T, selector any) int {
	return arr.SortedIndexBy(c.items, value, selector)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return wrap(slices.Concat(c.items, items))
}

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	return wrap(slices.Concat(items, c.items))
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return wrap(arr.Drop(c.items, len(c.items)+n))
	}
	return wrap(arr.DropRight(c.items, len(c.items)-n))
}

// TakeWhile returns items from the start while predicate matches.
func (c *Collection[T]) TakeWhile(predicate any) *Collection[T] {
	end := c.FindIndex(iteratee.Negate(iteratee.New(predicate)))
	if end < 0 {
		return From(c.items)
	}
	return From(c.items[:end])
}

// Skip returns a new collection skipping the first n items.
// A negative n skips items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n < 0 {
		return wrap(arr.DropRight(c.items, -n))
	}
	return wrap(arr.Drop(c.items, n))
}

// SkipWhile skips items while predicate matches, then returns the rest.
func (c *Collection[T]) SkipWhile(predicate any) *Collection[T] {
	return wrap(arr.DropWhile(c.items, predicate))
}

// Chunk splits the collection into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size items.
// Returns an empty [][]T if size <= 0 or the collection is empty.
//
// To work with each chunk as a *Collection, wrap with [From]:
//
//	for _, chunk := range c.Chunk(2) {
//	    sub := collections.From(chunk)
//	    // ...
//	}
func (c *Collection[T]) Chunk(size int) [][]T {
	return arr.Chunk(c.items, size)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds the numeric values selector produces. Non-numeric values are
// skipped.
//
//	orders.Sum("total")
func (c *Collection[T]) Sum(selector any) float64 {
	sum, _ := c.numbers(selector)
	return sum
}

// Average returns the arithmetic mean of the numeric values selector
// produces. Non-numeric values are skipped and do not count towards the
// divisor; with no numeric values the result is 0.
func (c *Collection[T]) Average(selector any) float64 {
	sum, n := c.numbers(selector)
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// numbers returns the sum and count of the numeric selector results.
func (c *Collection[T]) numbers(selector any) (float64, int) {
	var sum float64
	var n int
	for _, v := range c.Map(selector).items {
		if f, ok := lang.Float(v); ok {
			sum += f
			n++
		}
	}
	return sum, n
}

// MinBy returns the item with the smallest selector key.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) MinBy(selector any) (T, bool) {
	return c.extreme(selector, -1)
}

// MaxBy returns the item with the largest selector key.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) MaxBy(selector any) (T, bool) {
	return c.extreme(selector, 1)
}

func (c *Collection[T]) extreme(selector any, sign int) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	fn := iteratee.New(selector)
	best, bestKey := 0, fn(c.items[0], 0, c.items)
	for i := 1; i < len(c.items); i++ {
		k := fn(c.items[i], i, c.items)
		if lang.Compare(k, bestKey)*sign > 0 {
			best, bestKey = i, k
		}
	}
	return c.items[best], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
