package arr

import (
	"strconv"

	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which predicate is truthy.
// Returns the zero value and false when no element matches.
func Find[T any](items []T, predicate any) (T, bool) {
	if i := FindIndex(items, predicate); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// FindLast returns the last element for which predicate is truthy.
func FindLast[T any](items []T, predicate any) (T, bool) {
	if i := FindLastIndex(items, predicate); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element at or after fromIndex[0]
// (default 0) for which predicate is truthy, or -1. A negative fromIndex
// counts from the end.
//
//	FindIndex(users, map[string]any{"active": false})
//	FindIndex(users, []any{"role", "admin"})
func FindIndex[T any](items []T, predicate any, fromIndex ...int) int {
	test := iteratee.Predicate(predicate)
	start := 0
	if len(fromIndex) > 0 {
		start = clampIndex(fromIndex[0], len(items))
	}
	for i := start; i < len(items); i++ {
		if test(items[i], i, items) {
			return i
		}
	}
	return -1
}

// FindLastIndex is like [FindIndex] but iterates from fromIndex[0] (default
// the last index) towards the start.
func FindLastIndex[T any](items []T, predicate any, fromIndex ...int) int {
	test := iteratee.Predicate(predicate)
	start := len(items) - 1
	if len(fromIndex) > 0 {
		start = min(clampIndex(fromIndex[0], len(items)), len(items)-1)
	}
	for i := start; i >= 0; i-- {
		if test(items[i], i, items) {
			return i
		}
	}
	return -1
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(i, 0)
}

// Some reports whether predicate is truthy for at least one element.
func Some[T any](items []T, predicate any) bool {
	return FindIndex(items, predicate) >= 0
}

// Every reports whether predicate is truthy for every element. It is true for
// an empty slice.
func Every[T any](items []T, predicate any) bool {
	return FindIndex(items, iteratee.Negate(iteratee.New(predicate))) < 0
}

// IndexOf returns the index of the first element same-value-zero equal to
// value at or after fromIndex[0], or -1. NaN is found; arrays and maps are
// found only by identity.
func IndexOf[T any](items []T, value any, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = clampIndex(fromIndex[0], len(items))
	}
	for i := start; i < len(items); i++ {
		if lang.SameValueZero(items[i], value) {
			return i
		}
	}
	return -1
}

// Includes reports whether items holds an element same-value-zero equal to
// value.
func Includes[T any](items []T, value any) bool {
	return IndexOf(items, value) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements for which predicate is truthy.
//
//	Filter(users, "active")
//	Filter(users, map[string]any{"role": "admin"})
//	Filter(nums, func(v any) bool { return v.(int)%2 == 0 })
func Filter[T any](items []T, predicate any) []T {
	test := iteratee.Predicate(predicate)
	out := make([]T, 0, len(items))
	for i, item := range items {
		if test(item, i, items) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which predicate is falsy.
func Reject[T any](items []T, predicate any) []T {
	return Filter(items, iteratee.Negate(iteratee.New(predicate)))
}

// Map applies selector to every element and returns the results.
//
//	Map(users, "address.city") // → []any{"London", "Paris", …}
func Map[T any](items []T, selector any) []any {
	fn := iteratee.New(selector)
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = fn(item, i, items)
	}
	return out
}

// Compact returns the truthy elements of items (see [lang.IsTruthy]).
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if lang.IsTruthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// ToArray converts an array-like value to a []any: arrays are copied, strings
// are split into characters, and objects with a valid "length" yield their
// properties "0" … "length-1" ([lang.Undefined] for holes). A length that
// fails [lang.IsLength] yields an empty slice.
func ToArray(v any) []any {
	if lang.IsArray(v) {
		return append([]any(nil), lang.ToSlice(v)...)
	}
	if s, ok := v.(string); ok {
		out := make([]any, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out
	}
	n, ok := lang.Property(v, "length")
	if !ok || !lang.IsLength(n) || lang.IsFunction(v) {
		return []any{}
	}
	length, _ := lang.Float(n)
	out := make([]any, 0, min(int(length), 1024))
	for i := 0; i < int(length); i++ {
		elem, _ := lang.Property(v, strconv.Itoa(i))
		out = append(out, elem)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Flatten flattens items a single level deep.
//
//	Flatten([]any{1, []any{2, []any{3}}}) // → [1 2 [3]]
func Flatten(items []any) []any {
	return FlattenDepth(items, 1)
}

// FlattenDeep recursively flattens items.
func FlattenDeep(items []any) []any {
	return FlattenDepth(items, -1)
}

// FlattenDepth flattens items up to depth levels. A negative depth flattens
// completely; zero returns a copy.
func FlattenDepth(items []any, depth int) []any {
	out := make([]any, 0, len(items))
	return flattenInto(out, items, depth)
}

func flattenInto(out, items []any, depth int) []any {
	for _, item := range items {
		if depth != 0 && lang.IsArray(item) {
			out = flattenInto(out, lang.ToSlice(item), depth-1)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Drop returns a copy of items without its first n elements. A negative n
// drops nothing.
func Drop[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	return append([]T(nil), items[n:]...)
}

// DropRight returns a copy of items without its last n elements.
func DropRight[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	return append([]T(nil), items[:len(items)-n]...)
}

// DropWhile drops elements from the start while predicate is truthy and
// returns a copy of the rest.
func DropWhile[T any](items []T, predicate any) []T {
	test := iteratee.Predicate(predicate)
	i := 0
	for i < len(items) && test(items[i], i, items) {
		i++
	}
	return append([]T(nil), items[i:]...)
}

// DropRightWhile drops elements from the end while predicate is truthy and
// returns a copy of the rest. items is not modified.
func DropRightWhile[T any](items []T, predicate any) []T {
	test := iteratee.Predicate(predicate)
	end := len(items)
	for end > 0 && test(items[end-1], end-1, items) {
		end--
	}
	return append([]T(nil), items[:end]...)
}
