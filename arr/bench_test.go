package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

func benchUsers(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = map[string]any{"id": i, "group": i % 10, "active": i%2 == 0}
	}
	return out
}

func BenchmarkFilterMatches(b *testing.B) {
	items := benchUsers(1000)
	sel := map[string]any{"group": 3, "active": false}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.Filter(items, sel)
	}
}

func BenchmarkUniqBy(b *testing.B) {
	items := benchUsers(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.UniqBy(items, "group")
	}
}

func BenchmarkBinarySearch(b *testing.B) {
	items := make([]int, 1<<16)
	for i := range items {
		items[i] = i / 4
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.BinarySearch(items, i%len(items)/4, i%2 == 0)
	}
}
