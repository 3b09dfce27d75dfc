package collections

import (
	"github.com/hasbyte1/go-lodash-utils/hashing"
	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

// keyIndex assigns dense ordinals to keys in first-seen order. Keys are
// bucketed by structural digest and compared with lang.IsEqual, so maps and
// slices work as keys. The zero value is ready to use.
type keyIndex struct {
	keys    []any
	buckets map[hashing.Digest][]int
}

// ordinal returns the ordinal of k and whether k was seen for the first time.
func (x *keyIndex) ordinal(k any) (int, bool) {
	d := hashing.Sum(k)
	for _, i := range x.buckets[d] {
		if lang.IsEqual(x.keys[i], k) {
			return i, false
		}
	}
	if x.buckets == nil {
		x.buckets = make(map[hashing.Digest][]int)
	}
	x.keys = append(x.keys, k)
	x.buckets[d] = append(x.buckets[d], len(x.keys)-1)
	return len(x.keys) - 1, true
}

// Entry pairs a grouping key with a value derived from its group. It is the
// element type produced by [Collection.CountBy] and [Collection.KeyBy].
type Entry[V any] struct {
	Key   any
	Value V
}

// Group is one bucket produced by [Collection.GroupBy].
type Group[T any] struct {
	// Key is the selector result shared by every item in the group.
	Key any
	// Items holds the group's items in their original order.
	Items *Collection[T]
}

// GroupBy groups items by the key selector produces. Groups are returned in
// the order their keys first appear; deeply-equal keys (see [lang.IsEqual])
// share a group, so 1 and 1.0 land together.
//
//	for _, g := range users.GroupBy("address.city") {
//	    fmt.Println(g.Key, g.Items.Count())
//	}
func (c *Collection[T]) GroupBy(selector any) []Group[T] {
	fn := iteratee.New(selector)
	var idx keyIndex
	groups := make([]Group[T], 0)
	for i, item := range c.items {
		k := fn(item, i, c.items)
		n, fresh := idx.ordinal(k)
		if fresh {
			groups = append(groups, Group[T]{Key: k, Items: Empty[T]()})
		}
		groups[n].Items.items = append(groups[n].Items.items, item)
	}
	return groups
}

// CountBy counts items per key selector produces. Entries are returned in the
// order their keys first appear.
//
//	collections.New(6.1, 4.2, 6.3).CountBy(func(v any) any { return math.Floor(v.(float64)) })
//	// → [{6 2} {4 1}]
func (c *Collection[T]) CountBy(selector any) []Entry[int] {
	groups := c.GroupBy(selector)
	out := make([]Entry[int], len(groups))
	for i, g := range groups {
		out[i] = Entry[int]{Key: g.Key, Value: g.Items.Count()}
	}
	return out
}

// KeyBy pairs each distinct key selector produces with the last item that
// produced it. Entries are returned in the order their keys first appear.
func (c *Collection[T]) KeyBy(selector any) []Entry[T] {
	groups := c.GroupBy(selector)
	out := make([]Entry[T], len(groups))
	for i, g := range groups {
		last, _ := g.Items.Last()
		out[i] = Entry[T]{Key: g.Key, Value: last}
	}
	return out
}

// Partition splits the collection into two: the first holds the items
// matching predicate, the second the rest.
func (c *Collection[T]) Partition(predicate any) (*Collection[T], *Collection[T]) {
	test := iteratee.Predicate(predicate)
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range c.items {
		if test(item, i, c.items) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return wrap(pass), wrap(fail)
}
