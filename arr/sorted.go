package arr

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

// ─────────────────────────────────────────────────────────────────────────────
// Binary search
// ─────────────────────────────────────────────────────────────────────────────
//
// Every function in this section assumes its input is sorted ascending under
// the ordering it searches with. Sortedness is not checked; on unsorted input
// the result is unspecified.

// BinarySearch searches the ascending slice items for target.
//
// When one or more elements equal target it returns the lowest matching
// index, or the highest when preferHighest is set. Otherwise it returns
// -(insertionPoint)-1; recover the insertion point with -result-1.
//
// The optional bounds restrict the search to the inclusive range
// items[bounds[0]..bounds[1]]; bounds outside the slice are clamped.
//
//	BinarySearch([]int{1, 2, 2, 2, 3}, 2, false) // → 1
//	BinarySearch([]int{1, 2, 2, 2, 3}, 2, true)  // → 3
//	BinarySearch([]int{1, 3, 5}, 4, false)       // → -3 (insertion point 2)
func BinarySearch[T cmp.Ordered](items []T, target T, preferHighest bool, bounds ...int) int {
	return BinarySearchFunc(items, target, preferHighest, cmp.Compare[T], bounds...)
}

// BinarySearchFunc is like [BinarySearch] but orders elements against target
// with compare, which returns a negative number when the element sorts
// before target, zero when they are equal and a positive number otherwise.
func BinarySearchFunc[T, K any](items []T, target K, preferHighest bool, compare func(T, K) int, bounds ...int) int {
	lo, hi := 0, len(items)-1
	if len(bounds) > 0 {
		lo = min(max(bounds[0], 0), len(items))
	}
	if len(bounds) > 1 {
		hi = min(bounds[1], len(items)-1)
	}

	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := compare(items[mid], target); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			if preferHighest {
				for mid < hi && compare(items[mid+1], target) == 0 {
					mid++
				}
			} else {
				for mid > lo && compare(items[mid-1], target) == 0 {
					mid--
				}
			}
			return mid
		}
	}
	return -lo - 1
}

// BinarySearchBy is like [BinarySearch] but compares the keys selector
// produces for the elements and for target, ordered by [lang.Compare].
// target has the element type, so over []any it must be passed as an any:
//
//	BinarySearchBy(users, map[string]any{"age": 30}, false, "age") // users []map[string]any
//	BinarySearchBy(items, any(map[string]any{"age": 30}), false, "age") // items []any
func BinarySearchBy[T any](items []T, target T, preferHighest bool, selector any, bounds ...int) int {
	key := sortKey[T](selector)
	want := key(target)
	return BinarySearchFunc(items, want, preferHighest, func(item T, k any) int {
		return lang.Compare(key(item), k)
	}, bounds...)
}

func sortKey[T any](selector any) func(T) any {
	fn := iteratee.New(selector)
	return func(v T) any { return fn(v, -1, nil) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Insertion points
// ─────────────────────────────────────────────────────────────────────────────

// insertionIndex converts a search result to a plain insertion index. A match
// inserts before it, or after it when after is set.
func insertionIndex(result int, after bool) int {
	switch {
	case result < 0:
		return -result - 1
	case after:
		return result + 1
	}
	return result
}

// SortedIndex returns the lowest index at which value can be inserted into
// the ascending slice items while keeping it sorted.
//
//	SortedIndex([]int{10, 20, 30}, 25) // → 2
func SortedIndex[T cmp.Ordered](items []T, value T) int {
	return insertionIndex(BinarySearch(items, value, false), false)
}

// SortedLastIndex returns the highest index at which value can be inserted
// into the ascending slice items while keeping it sorted.
//
//	SortedLastIndex([]int{10, 20, 20, 30}, 20) // → 3
func SortedLastIndex[T cmp.Ordered](items []T, value T) int {
	return insertionIndex(BinarySearch(items, value, true), true)
}

// SortedIndexBy is like [SortedIndex] but orders by the key selector
// produces. As with [BinarySearchBy], value has the element type.
//
//	SortedIndexBy(users, map[string]any{"age": 30}, "age") // users []map[string]any
func SortedIndexBy[T any](items []T, value T, selector any) int {
	return insertionIndex(BinarySearchBy(items, value, false, selector), false)
}

// SortedLastIndexBy is like [SortedLastIndex] but orders by the key selector
// produces.
func SortedLastIndexBy[T any](items []T, value T, selector any) int {
	return insertionIndex(BinarySearchBy(items, value, true, selector), true)
}

// ─────────────────────────────────────────────────────────────────────────────
// Index lookup
// ─────────────────────────────────────────────────────────────────────────────

// SortedIndexOf sorts a copy of items and returns the lowest index of value
// in that sorted copy, or -1. items itself is not modified.
//
//	SortedIndexOf([]int{4, 5, 5, 6}, 5) // → 1
func SortedIndexOf[T cmp.Ordered](items []T, value T) int {
	return matchIndex(BinarySearch(slices.Sorted(slices.Values(items)), value, false))
}

// SortedLastIndexOf is like [SortedIndexOf] but returns the highest matching
// index.
func SortedLastIndexOf[T cmp.Ordered](items []T, value T) int {
	return matchIndex(BinarySearch(slices.Sorted(slices.Values(items)), value, true))
}

// SortedIndexOfBy is like [SortedIndexOf] but sorts and searches by the key
// selector produces. The sort is stable.
func SortedIndexOfBy[T any](items []T, value T, selector any) int {
	return matchIndex(BinarySearchBy(sortedBy(items, selector), value, false, selector))
}

// SortedLastIndexOfBy is like [SortedLastIndexOf] but sorts and searches by
// the key selector produces.
func SortedLastIndexOfBy[T any](items []T, value T, selector any) int {
	return matchIndex(BinarySearchBy(sortedBy(items, selector), value, true, selector))
}

func matchIndex(result int) int {
	return max(result, -1)
}

// sortedBy returns a copy of items stably sorted by selector keys.
func sortedBy[T any](items []T, selector any) []T {
	key := sortKey[T](selector)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return lang.Compare(key(a), key(b))
	})
	return out
}
