package lang_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

func makeTree(width, depth int) any {
	if depth == 0 {
		return width
	}
	m := make(map[string]any, width)
	for i := 0; i < width; i++ {
		m["k"+strconv.Itoa(i)] = []any{i, makeTree(width, depth-1)}
	}
	return m
}

func BenchmarkIsEqual(b *testing.B) {
	x, y := makeTree(8, 3), makeTree(8, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lang.IsEqual(x, y)
	}
}

func BenchmarkClassify(b *testing.B) {
	values := []any{1, "s", []any{}, map[string]any{}, nil, lang.Box(1)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lang.Classify(values[i%len(values)])
	}
}
