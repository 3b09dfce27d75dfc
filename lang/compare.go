package lang

import (
	"cmp"
	"reflect"
	"strings"
)

// Compare orders two values naturally and returns -1, 0 or +1.
//
// Numbers compare numerically, strings lexicographically, false sorts before
// true, and arrays compare element by element and then by length. Object-like
// values with a primitive conversion (boxed primitives, time.Time) compare by
// that conversion. Values of different tags order by tag, with [Undefined]
// after everything else. Values of the same tag with no natural order compare
// as equal.
func Compare(a, b any) int {
	if pa, ok := ValueOf(a); ok {
		a = pa
	}
	if pb, ok := ValueOf(b); ok {
		b = pb
	}

	ta, tb := Classify(a), Classify(b)
	if ta != tb {
		return cmp.Compare(rank(ta), rank(tb))
	}

	switch ta {
	case TagNumber:
		na, _ := toNumber(a)
		nb, _ := toNumber(b)
		return na.compare(nb)
	case TagString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case TagBoolean:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case TagArray:
		xs, ys := ToSlice(a), ToSlice(b)
		for i := 0; i < len(xs) && i < len(ys); i++ {
			if c := Compare(xs[i], ys[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(xs), len(ys))
	}
	return 0
}

func rank(t Tag) int {
	if t == TagUndefined {
		return int(TagObjectLike) + 1
	}
	return int(t)
}
