package collections

import "github.com/hasbyte1/go-lodash-utils/arr"

// Methods cannot declare type parameters, so operations that change the
// element type live here as functions. They take typed callbacks instead of
// selectors:
//
//	names := collections.Map(users.Where("active", true),
//	    func(u User, _ int) string { return u.Name })

// Map returns fn(item, index) for every item.
//
//	collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) }) // ["2","4","6"]
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	for i := range c.items {
		out = append(out, fn(c.items[i], i))
	}
	return wrap(out)
}

// FlatMap concatenates the slices fn returns for every item.
//
//	tags := collections.FlatMap(posts, func(p Post, _ int) []string { return p.Tags })
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	return Collapse(Map(c, fn))
}

// Reduce folds the items left to right into acc, starting from initial.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o Order, _ int) float64 { return acc + o.Total }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	acc := initial
	for i := range c.items {
		acc = fn(acc, c.items[i], i)
	}
	return acc
}

// Collapse concatenates a collection of slices, one level deep. Nil slices
// contribute nothing.
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	n := Reduce(c, func(n int, part []T, _ int) int { return n + len(part) }, 0)
	out := make([]T, 0, n)
	for _, part := range c.items {
		out = append(out, part...)
	}
	return wrap(out)
}

// FlattenDeep flattens nested slices and nested *Collection[any] values to
// any depth.
//
//	collections.FlattenDeep(collections.New[any](1, []any{2, []any{3}})) // [1 2 3]
func FlattenDeep(c *Collection[any]) *Collection[any] {
	items := make([]any, len(c.items))
	for i, item := range c.items {
		if nested, ok := item.(*Collection[any]); ok {
			item = FlattenDeep(nested).items
		}
		items[i] = item
	}
	return wrap(arr.FlattenDeep(items))
}
