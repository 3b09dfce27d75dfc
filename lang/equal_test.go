package lang_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// ─── IsEqual ──────────────────────────────────────────────────────────────────

type record struct {
	Tags   []string
	Meta   map[string]any
	Score  float64
	labels []string
}

func TestIsEqualReflexive(t *testing.T) {
	fn := func() {}
	re := regexp.MustCompile("a+")
	obj := map[string]any{"a": []any{1, map[string]any{"b": nil}}}
	for _, v := range []any{
		nil, lang.Undefined, "s", 0, -1.5, math.NaN(), math.Inf(-1), true,
		[]any{1, "a"}, obj, fn, re, lang.Box(math.NaN()), user{Name: "x"}, time.Unix(10, 0),
		record{Tags: []string{"a"}, Meta: map[string]any{"k": []any{1}}, labels: []string{"x"}},
		struct{ F float64 }{math.NaN()},
		complex(math.NaN(), 0),
	} {
		if !lang.IsEqual(v, v) {
			t.Fatalf("IsEqual(%#v, itself) should be true", v)
		}
	}
}

func TestIsEqualNaN(t *testing.T) {
	if !lang.IsEqual(math.NaN(), math.NaN()) {
		t.Fatal("NaN should equal NaN")
	}
	if !lang.IsEqual([]any{math.NaN()}, []any{math.NaN()}) {
		t.Fatal("nested NaN should equal NaN")
	}
	if lang.IsEqual(math.NaN(), 0) {
		t.Fatal("NaN should not equal 0")
	}
}

func TestIsEqualTagMismatch(t *testing.T) {
	pairs := [][2]any{
		{nil, lang.Undefined},
		{1, "1"},
		{0, false},
		{[]any{}, map[string]any{}},
		{lang.Box(1), 1},
		{"a", lang.Box("a")},
	}
	for _, p := range pairs {
		if lang.IsEqual(p[0], p[1]) || lang.IsEqual(p[1], p[0]) {
			t.Fatalf("IsEqual(%#v, %#v) should be false", p[0], p[1])
		}
	}
}

func TestIsEqualNumbersAcrossKinds(t *testing.T) {
	if !lang.IsEqual(1, 1.0) || !lang.IsEqual(uint8(3), int64(3)) {
		t.Fatal("numbers should compare by value")
	}
	if !lang.IsEqual(0.0, math.Copysign(0, -1)) {
		t.Fatal("0 should equal -0")
	}
	if lang.IsEqual(int64(-1), uint64(math.MaxUint64)) {
		t.Fatal("-1 should not equal MaxUint64")
	}
}

func TestIsEqualPlainObjects(t *testing.T) {
	a := map[string]any{"x": 1, "y": []any{"a", map[string]any{"z": true}}}
	b := map[string]any{"y": []any{"a", map[string]any{"z": true}}, "x": 1.0}
	if !lang.IsEqual(a, b) || !lang.IsEqual(b, a) {
		t.Fatal("objects with equal key sets and values should be equal")
	}
	if lang.IsEqual(map[string]any{"a": 1}, map[string]any{"a": 1, "b": nil}) {
		t.Fatal("extra key should make objects unequal")
	}
	if lang.IsEqual(map[string]any{"a": nil}, map[string]any{"b": nil}) {
		t.Fatal("different keys should make objects unequal")
	}
	if !lang.IsEqual(map[string]int{"a": 1}, map[string]any{"a": 1}) {
		t.Fatal("typed maps compare structurally")
	}
}

func TestIsEqualArrays(t *testing.T) {
	if !lang.IsEqual([]int{1, 2, 3}, []any{1, 2, 3}) {
		t.Fatal("arrays of equal elements should be equal")
	}
	if lang.IsEqual([]any{1, 2}, []any{1, 2, 3}) {
		t.Fatal("arrays of different length should not be equal")
	}
	if lang.IsEqual([]any{1, 2}, []any{2, 1}) {
		t.Fatal("reordered arrays should not be equal")
	}
	if !lang.IsEqual([]any{}, []int(nil)) {
		t.Fatal("empty arrays should be equal")
	}
}

func TestIsEqualObjectLike(t *testing.T) {
	if !lang.IsEqual(lang.Box(1), lang.Box(1.0)) {
		t.Fatal("boxed primitives compare by value")
	}
	if lang.IsEqual(lang.Box(1), lang.Box("1")) {
		t.Fatal("boxed 1 and boxed \"1\" differ")
	}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if !lang.IsEqual(at, at.In(time.FixedZone("X", 3600))) {
		t.Fatal("times compare by instant")
	}
	if lang.IsEqual(regexp.MustCompile("a"), regexp.MustCompile("a")) {
		t.Fatal("distinct regexps compare by identity")
	}
	if !lang.IsEqual(user{Name: "a"}, user{Name: "a"}) {
		t.Fatal("equal structs of the same type are equal")
	}
	a := record{Tags: []string{"a"}, Score: 1, labels: []string{"x"}}
	b := record{Tags: []string{"a"}, Score: 1.0, labels: []string{"x"}}
	if !lang.IsEqual(a, b) {
		t.Fatal("structs with slice fields compare field by field")
	}
	b.labels = []string{"y"}
	if lang.IsEqual(a, b) {
		t.Fatal("unexported fields take part in struct equality")
	}
	if lang.IsEqual(record{Tags: []string{"a"}}, record{Tags: []string{"b"}}) {
		t.Fatal("different exported fields make structs unequal")
	}
	if lang.IsEqual(complex(1, 2), complex(1, 3)) || !lang.IsEqual(complex(1, 2), complex(1, 2)) {
		t.Fatal("complex numbers compare part by part")
	}
	p1, p2 := &user{Name: "a"}, &user{Name: "a"}
	if lang.IsEqual(p1, p2) {
		t.Fatal("distinct pointers compare by identity")
	}
}

func TestIsEqualFunctions(t *testing.T) {
	f := func() int { return 1 }
	if !lang.IsEqual(f, f) {
		t.Fatal("a function equals itself")
	}
	if lang.IsEqual(f, TestIsEqualFunctions) {
		t.Fatal("different functions are not equal")
	}
}

// ─── SameValueZero ────────────────────────────────────────────────────────────

func TestSameValueZero(t *testing.T) {
	if !lang.SameValueZero(math.NaN(), math.NaN()) {
		t.Fatal("NaN should be same-value-zero to NaN")
	}
	if !lang.SameValueZero(2, 2.0) || lang.SameValueZero(2, "2") {
		t.Fatal("primitives compare strictly")
	}
	a := []any{1}
	if lang.SameValueZero(a, []any{1}) {
		t.Fatal("SameValueZero must not recurse into arrays")
	}
	if !lang.SameValueZero(a, a) {
		t.Fatal("same slice should be same-value-zero")
	}
	m := map[string]any{}
	if !lang.SameValueZero(m, m) || lang.SameValueZero(m, map[string]any{}) {
		t.Fatal("maps compare by identity")
	}
}

// ─── IsMatch ──────────────────────────────────────────────────────────────────

func TestIsMatch(t *testing.T) {
	if !lang.IsMatch(map[string]any{"a": 1, "b": 2}, map[string]any{"a": 1}) {
		t.Fatal("superset should match")
	}
	if lang.IsMatch(map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}) {
		t.Fatal("subset should not match")
	}
	if !lang.IsMatch(map[string]any{"a": map[string]any{"b": 1}}, map[string]any{"a": map[string]any{"b": 1}}) {
		t.Fatal("nested values compare deeply")
	}
	if lang.IsMatch(map[string]any{"a": map[string]any{"b": 1, "c": 2}}, map[string]any{"a": map[string]any{"b": 1}}) {
		t.Fatal("nested values use full equality, not partial matching")
	}
	if !lang.IsMatch(user{Name: "ann", Age: 3}, map[string]any{"name": "ann"}) {
		t.Fatal("struct fields should match by json name")
	}
	if !lang.IsMatch(map[string]any{}, map[string]any{}) {
		t.Fatal("empty source matches everything")
	}
	if lang.IsMatch(nil, map[string]any{"a": 1}) {
		t.Fatal("nil object has no properties")
	}
	m := map[string]any{"a": math.NaN()}
	if !lang.IsMatch(m, m) {
		t.Fatal("a value matches itself")
	}
}

// ─── Compare ──────────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2.5, 2, 1},
		{uint(3), 3, 0},
		{"a", "b", -1},
		{false, true, -1},
		{[]any{1, 2}, []any{1, 3}, -1},
		{[]any{1}, []any{1, 0}, -1},
		{lang.Box(5), 4, 1},
		{lang.Undefined, 1, 1},
		{"a", 1, -1},
	}
	for _, tc := range cases {
		if got := lang.Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%#v, %#v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
