// Package arr provides standalone generic helpers for Go slices, modelled
// after lodash's array functions.
//
// # Selectors
//
// Helpers that take a predicate or selector accept any shape understood by
// [iteratee.From]: a property path, a partial-match object, a [path, value]
// pair or a func. They work on plain []T values, with no wrapper type:
//
//	active := arr.Filter(users, "active")
//	admins := arr.Filter(users, map[string]any{"role": "admin"})
//	i      := arr.FindIndex(users, []any{"address.city", "London"})
//	cities := arr.Map(users, "address.city")
//
// # Equality
//
// Membership helpers ([IndexOf], [Includes], [Difference], [Uniq], [PullAll]
// and friends) compare with [lang.SameValueZero]: NaN matches NaN and
// composite values match only by identity. The *With variants take a
// comparator instead, e.g. [lang.IsEqual] for deep comparison. Set helpers
// bucket values by [hashing.Sum] so they stay linear in the input size.
//
// # Sorted search
//
// [BinarySearch], [SortedIndex], [SortedLastIndex], [SortedIndexOf] and
// their *By variants search ascending slices in O(log n):
//
//	arr.BinarySearch([]int{1, 2, 2, 2, 3}, 2, false) // → 1
//	arr.SortedLastIndex([]int{10, 20, 20, 30}, 20)   // → 3
//
// # Mutation
//
// Every helper returns a new slice except PullAll, PullAllBy and
// PullAllWith, which compact the caller's slice in place.
package arr
