package arr

import (
	"github.com/hasbyte1/go-lodash-utils/hashing"
	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

// valueSet is a membership set keyed by structural digest. eq must imply
// equal digests; lang.SameValueZero and lang.IsEqual both do.
type valueSet struct {
	eq      func(a, b any) bool
	buckets map[hashing.Digest][]any
}

func newValueSet(eq func(a, b any) bool) *valueSet {
	return &valueSet{eq: eq, buckets: make(map[hashing.Digest][]any)}
}

func (s *valueSet) has(v any) bool {
	return s.find(hashing.Sum(v), v)
}

func (s *valueSet) find(d hashing.Digest, v any) bool {
	for _, x := range s.buckets[d] {
		if s.eq(x, v) {
			return true
		}
	}
	return false
}

// add inserts v and reports whether it was absent.
func (s *valueSet) add(v any) bool {
	d := hashing.Sum(v)
	if s.find(d, v) {
		return false
	}
	s.buckets[d] = append(s.buckets[d], v)
	return true
}

// keyFunc maps items to the keys set operations compare. A nil selector
// compares the items themselves.
func keyFunc[T any](items []T, selector any) func(int) any {
	if selector == nil {
		return func(i int) any { return items[i] }
	}
	fn := iteratee.New(selector)
	return func(i int) any { return fn(items[i], i, items) }
}

func setOf[T any](items []T, key func(int) any) *valueSet {
	s := newValueSet(lang.SameValueZero)
	for i := range items {
		s.add(key(i))
	}
	return s
}

// linearHas reports whether any element of values satisfies comparator
// against item.
func linearHas[T any](values []T, item T, comparator func(a, b T) bool) bool {
	for _, v := range values {
		if comparator(item, v) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Difference
// ─────────────────────────────────────────────────────────────────────────────

// Difference returns the elements of items not same-value-zero equal to any
// element of exclude, in their original order.
//
//	Difference([]int{2, 1}, []int{2, 3}) // → [1]
func Difference[T any](items, exclude []T) []T {
	return DifferenceBy(items, exclude, nil)
}

// DifferenceBy is like [Difference] but compares the keys produced by
// selector for both slices.
//
//	DifferenceBy(points, []any{map[string]any{"x": 1}}, "x")
func DifferenceBy[T any](items, exclude []T, selector any) []T {
	excluded := setOf(exclude, keyFunc(exclude, selector))
	key := keyFunc(items, selector)
	out := make([]T, 0, len(items))
	for i, item := range items {
		if !excluded.has(key(i)) {
			out = append(out, item)
		}
	}
	return out
}

// DifferenceWith is like [Difference] but uses comparator to decide
// equality. comparator receives an element of items and one of exclude.
//
//	DifferenceWith(objects, others, lang.IsEqual)
func DifferenceWith[T any](items, exclude []T, comparator func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !linearHas(exclude, item, comparator) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Intersection
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the unique elements of items that are same-value-zero
// equal to an element of others, in their order in items.
func Intersection[T any](items, others []T) []T {
	return IntersectionBy(items, others, nil)
}

// IntersectionBy is like [Intersection] but compares the keys produced by
// selector for both slices.
func IntersectionBy[T any](items, others []T, selector any) []T {
	wanted := setOf(others, keyFunc(others, selector))
	seen := newValueSet(lang.SameValueZero)
	key := keyFunc(items, selector)
	out := make([]T, 0)
	for i, item := range items {
		k := key(i)
		if wanted.has(k) && seen.add(k) {
			out = append(out, item)
		}
	}
	return out
}

// IntersectionWith is like [Intersection] but uses comparator to decide
// equality.
func IntersectionWith[T any](items, others []T, comparator func(a, b T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if linearHas(others, item, comparator) && !linearHas(out, item, comparator) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniq
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns items without same-value-zero duplicates, keeping the first
// occurrence of each value.
//
//	Uniq([]any{2, 1, 2, math.NaN(), math.NaN()}) // → [2 1 NaN]
func Uniq[T any](items []T) []T {
	return UniqBy(items, nil)
}

// UniqBy is like [Uniq] but deduplicates by the key selector produces.
//
//	UniqBy(users, "id")
func UniqBy[T any](items []T, selector any) []T {
	seen := newValueSet(lang.SameValueZero)
	key := keyFunc(items, selector)
	out := make([]T, 0, len(items))
	for i, item := range items {
		if seen.add(key(i)) {
			out = append(out, item)
		}
	}
	return out
}

// UniqDeep is like [Uniq] but treats deeply equal values (see
// [lang.IsEqual]) as duplicates.
//
//	UniqDeep([]any{map[string]any{"a": 1}, map[string]any{"a": 1}}) // → [{a:1}]
func UniqDeep[T any](items []T) []T {
	seen := newValueSet(lang.IsEqual)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if seen.add(item) {
			out = append(out, item)
		}
	}
	return out
}

// UniqWith is like [Uniq] but uses comparator to decide equality.
func UniqWith[T any](items []T, comparator func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !linearHas(out, item, comparator) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// PullAll (mutating)
// ─────────────────────────────────────────────────────────────────────────────

// PullAll removes from *items, in place, every element same-value-zero equal
// to an element of values and returns the shortened slice. Unlike the other
// helpers in this package it mutates its input.
//
//	s := []int{1, 2, 3, 1, 2, 3}
//	PullAll(&s, []int{2, 3}) // s is now [1 1]
func PullAll[T any](items *[]T, values []T) []T {
	return PullAllBy(items, values, nil)
}

// PullAllBy is like [PullAll] but compares the keys produced by selector.
func PullAllBy[T any](items *[]T, values []T, selector any) []T {
	pulled := setOf(values, keyFunc(values, selector))
	key := keyFunc(*items, selector)
	return pullIf(items, func(i int) bool { return pulled.has(key(i)) })
}

// PullAllWith is like [PullAll] but uses comparator to decide equality.
func PullAllWith[T any](items *[]T, values []T, comparator func(a, b T) bool) []T {
	s := *items
	return pullIf(items, func(i int) bool { return linearHas(values, s[i], comparator) })
}

// pullIf compacts *items in place, dropping the indices drop reports. Writes
// only ever land at or before the index being tested.
func pullIf[T any](items *[]T, drop func(int) bool) []T {
	s := *items
	n := 0
	for i := range s {
		if drop(i) {
			continue
		}
		s[n] = s[i]
		n++
	}
	clear(s[n:])
	*items = s[:n]
	return *items
}
