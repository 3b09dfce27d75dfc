package arr_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

// ─── BinarySearch ─────────────────────────────────────────────────────────────

func TestBinarySearch(t *testing.T) {
	cases := []struct {
		name          string
		items         []int
		target        int
		preferHighest bool
		want          int
	}{
		{"lowest duplicate", []int{1, 2, 2, 2, 3}, 2, false, 1},
		{"highest duplicate", []int{1, 2, 2, 2, 3}, 2, true, 3},
		{"all equal lowest", []int{5, 5, 5, 5}, 5, false, 0},
		{"all equal highest", []int{5, 5, 5, 5}, 5, true, 3},
		{"single match", []int{1, 3, 5}, 5, false, 2},
		{"no match", []int{1, 3, 5}, 4, false, -3},
		{"below all", []int{1, 3, 5}, 0, false, -1},
		{"above all", []int{1, 3, 5}, 9, true, -4},
		{"empty", []int{}, 1, false, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := arr.BinarySearch(tc.items, tc.target, tc.preferHighest); got != tc.want {
				t.Fatalf("BinarySearch(%v, %d, %v) = %d; want %d", tc.items, tc.target, tc.preferHighest, got, tc.want)
			}
		})
	}
}

func TestBinarySearchInsertionPoint(t *testing.T) {
	code := arr.BinarySearch([]int{1, 3, 5}, 4, false)
	if code >= 0 || -code-1 != 2 {
		t.Fatalf("BinarySearch no-match code = %d; want insertion point 2", code)
	}
}

func TestBinarySearchBounds(t *testing.T) {
	items := []int{2, 2, 2, 2, 2}
	if got := arr.BinarySearch(items, 2, false, 2, 3); got != 2 {
		t.Fatalf("bounded lowest = %d; want 2", got)
	}
	if got := arr.BinarySearch(items, 2, true, 1, 3); got != 3 {
		t.Fatalf("bounded highest = %d; want 3", got)
	}
	if got := arr.BinarySearch([]int{1, 2, 3, 4}, 1, false, 2); got != -3 {
		t.Fatalf("search right of target = %d; want -3", got)
	}
	if got := arr.BinarySearch(items, 2, true, -5, 99); got != 4 {
		t.Fatalf("clamped bounds = %d; want 4", got)
	}
	if got := arr.BinarySearch([]int{1, 2, 3}, 9, false, 10); got != -4 {
		t.Fatalf("left bound past the end = %d; want -4", got)
	}
}

func TestBinarySearchStrings(t *testing.T) {
	if got := arr.BinarySearch([]string{"a", "c", "e"}, "d", false); got != -3 {
		t.Fatalf("string search = %d; want -3", got)
	}
}

func TestBinarySearchFunc(t *testing.T) {
	type event struct{ at int }
	events := []event{{1}, {4}, {4}, {9}}
	byAt := func(e event, at int) int { return e.at - at }
	if got := arr.BinarySearchFunc(events, 4, true, byAt); got != 2 {
		t.Fatalf("BinarySearchFunc = %d; want 2", got)
	}
}

func TestBinarySearchBy(t *testing.T) {
	items := []map[string]any{{"n": 1}, {"n": 3}, {"n": 3}}
	if got := arr.BinarySearchBy(items, map[string]any{"n": 3}, false, "n"); got != 1 {
		t.Fatalf("BinarySearchBy = %d; want 1", got)
	}
	if got := arr.BinarySearchBy(items, map[string]any{"n": 2}, false, "n"); got != -2 {
		t.Fatalf("BinarySearchBy no match = %d; want -2", got)
	}

	// With []any items the target must be passed as any too.
	loose := []any{map[string]any{"n": 1}, map[string]any{"n": 3}}
	if got := arr.BinarySearchBy(loose, any(map[string]any{"n": 3}), false, "n"); got != 1 {
		t.Fatalf("BinarySearchBy over []any = %d; want 1", got)
	}
}

// ─── Insertion points ─────────────────────────────────────────────────────────

func TestSortedIndex(t *testing.T) {
	if got := arr.SortedIndex([]int{10, 20, 30}, 25); got != 2 {
		t.Fatalf("SortedIndex = %d; want 2", got)
	}
	if got := arr.SortedIndex([]int{10, 20, 20, 30}, 20); got != 1 {
		t.Fatalf("SortedIndex duplicate = %d; want 1", got)
	}
	if got := arr.SortedIndex([]int{}, 5); got != 0 {
		t.Fatalf("SortedIndex empty = %d; want 0", got)
	}
}

func TestSortedLastIndex(t *testing.T) {
	if got := arr.SortedLastIndex([]int{10, 20, 20, 30}, 20); got != 3 {
		t.Fatalf("SortedLastIndex = %d; want 3", got)
	}
	if got := arr.SortedLastIndex([]int{10, 20, 30}, 40); got != 3 {
		t.Fatalf("SortedLastIndex above all = %d; want 3", got)
	}
}

func TestSortedIndexBy(t *testing.T) {
	items := []map[string]any{{"x": 4}, {"x": 5}, {"x": 5}}
	if got := arr.SortedIndexBy(items, map[string]any{"x": 5}, "x"); got != 1 {
		t.Fatalf("SortedIndexBy = %d; want 1", got)
	}
	if got := arr.SortedLastIndexBy(items, map[string]any{"x": 5}, "x"); got != 3 {
		t.Fatalf("SortedLastIndexBy = %d; want 3", got)
	}
}

// ─── Index lookup ─────────────────────────────────────────────────────────────

func TestSortedIndexOf(t *testing.T) {
	items := []int{6, 5, 4, 5}
	if got := arr.SortedIndexOf(items, 5); got != 1 {
		t.Fatalf("SortedIndexOf = %d; want 1", got)
	}
	if got := arr.SortedLastIndexOf(items, 5); got != 2 {
		t.Fatalf("SortedLastIndexOf = %d; want 2", got)
	}
	if got := arr.SortedIndexOf(items, 7); got != -1 {
		t.Fatalf("SortedIndexOf missing = %d; want -1", got)
	}
	assertSlice(t, items, []int{6, 5, 4, 5})
}

func TestSortedIndexOfNaN(t *testing.T) {
	if got := arr.SortedIndexOf([]float64{3, math.NaN(), 1}, math.NaN()); got != 0 {
		t.Fatalf("SortedIndexOf NaN = %d; want 0", got)
	}
}

func TestSortedIndexOfBy(t *testing.T) {
	items := []map[string]any{{"x": 9}, {"x": 4}, {"x": 4}}
	if got := arr.SortedIndexOfBy(items, map[string]any{"x": 4}, "x"); got != 0 {
		t.Fatalf("SortedIndexOfBy = %d; want 0", got)
	}
	if got := arr.SortedLastIndexOfBy(items, map[string]any{"x": 4}, "x"); got != 1 {
		t.Fatalf("SortedLastIndexOfBy = %d; want 1", got)
	}
	if got := arr.SortedIndexOfBy(items, map[string]any{"x": 1}, "x"); got != -1 {
		t.Fatalf("SortedIndexOfBy missing = %d; want -1", got)
	}
}
