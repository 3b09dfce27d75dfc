package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, _ int) string {
		return strconv.Itoa(n * 2)
	}).All()
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestFlatMapFunc(t *testing.T) {
	got := collections.FlatMap(ints(1, 2, 3), func(n, _ int) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(n * 10)}
	}).All()
	assertSlice(t, got, []string{"1", "10", "2", "20", "3", "30"})
}

func TestReduceFunc(t *testing.T) {
	// int → string
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want %q", s, "1,2,3")
	}

	if sum := collections.Reduce(collections.Empty[int](), func(acc, n, _ int) int { return acc + n }, 7); sum != 7 {
		t.Fatalf("Reduce on empty = %d; want the initial value", sum)
	}
}

func TestCollapse(t *testing.T) {
	got := collections.Collapse(collections.New([]int{1, 2}, nil, []int{3})).All()
	assertSlice(t, got, []int{1, 2, 3})
}

func TestFlattenDeep(t *testing.T) {
	nested := collections.New[any](4, []any{5})
	c := collections.New[any](1, []any{2, []any{3}}, nested, []int{6})
	got := collections.FlattenDeep(c).All()
	assertSlice(t, got, []any{1, 2, 3, 4, 5, 6})
}
