package object_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
)

func TestSet(t *testing.T) {
	m := map[string]any{}
	if !object.Set(m, "a.b.c", 42) {
		t.Fatal("Set should succeed")
	}
	if got := object.Get(m, "a.b.c"); got != 42 {
		t.Fatalf("Set/Get a.b.c = %v; want 42", got)
	}
}

func TestSetCreatesSlices(t *testing.T) {
	m := map[string]any{}
	object.Set(m, "matrix[1][0]", 7)
	rows, ok := m["matrix"].([]any)
	if !ok || len(rows) != 2 || rows[0] != nil {
		t.Fatalf("matrix = %#v", m["matrix"])
	}
	if got := object.Get(m, "matrix[1][0]"); got != 7 {
		t.Fatalf("Get matrix[1][0] = %v; want 7", got)
	}
}

func TestSetOverwritesExisting(t *testing.T) {
	m := makeNested()
	object.Set(m, "user.name", "Bob")
	if object.Get(m, "user.name") != "Bob" {
		t.Fatal("Set did not overwrite")
	}
	object.Set(m, "score.value", 1)
	if object.Get(m, "score.value") != 1 {
		t.Fatal("Set should replace a scalar with a map")
	}
}

func TestSetRejects(t *testing.T) {
	m := map[string]any{"list": []any{1}}
	if object.Set(m, "", 1) {
		t.Fatal("Set with an empty path should fail")
	}
	if object.Set(m, "list.name", 1) {
		t.Fatal("Set with a non-index key on a slice should fail")
	}
}

func TestUnset(t *testing.T) {
	m := makeNested()
	if !object.Unset(m, "user.address.city") {
		t.Fatal("Unset should report removal")
	}
	if object.Has(m, "user.address.city") {
		t.Fatal("Unset did not remove key")
	}
	if !object.Has(m, "user.address.country") {
		t.Fatal("Unset removed sibling key")
	}
	if object.Unset(m, "user.address.city") || object.Unset(m, "nope.x") {
		t.Fatal("Unset of a missing path should report false")
	}
}

func TestCloneDeep(t *testing.T) {
	m := makeNested()
	c := object.CloneDeep(m).(map[string]any)
	object.Set(c, "user.address.city", "Paris")
	if object.Get(m, "user.address.city") != "London" {
		t.Fatal("CloneDeep shared nested maps")
	}
	if !lang.IsEqual(object.CloneDeep(makeNested()), makeNested()) {
		t.Fatal("clone should be deeply equal to its source")
	}
}

func TestDot(t *testing.T) {
	flat := object.Dot(makeNested())
	if flat["user.name"] != "Alice" {
		t.Fatalf("Dot user.name = %v; want Alice", flat["user.name"])
	}
	if flat["user.tags[1].id"] != 7 {
		t.Fatalf("Dot user.tags[1].id = %v; want 7", flat["user.tags[1].id"])
	}
	if flat["score"] != 42 {
		t.Fatalf("Dot score = %v; want 42", flat["score"])
	}
	m := makeNested()
	for path, v := range flat {
		if !lang.IsEqual(object.Get(m, path), v) {
			t.Fatalf("Dot key %q does not resolve to its value", path)
		}
	}
}

func TestPick(t *testing.T) {
	got := object.Pick(makeNested(), "user.name", "score", "missing")
	want := map[string]any{"user": map[string]any{"name": "Alice"}, "score": 42}
	if !lang.IsEqual(got, want) {
		t.Fatalf("Pick = %v; want %v", got, want)
	}
}

func TestOmit(t *testing.T) {
	src := makeNested()
	got := object.Omit(src, "user.address", "score")
	if object.Has(got, "user.address") || object.Has(got, "score") {
		t.Fatalf("Omit kept omitted paths: %v", got)
	}
	if !object.Has(src, "user.address") {
		t.Fatal("Omit modified its input")
	}
}

func TestMerge(t *testing.T) {
	dst := map[string]any{
		"a":      1,
		"nested": map[string]any{"x": 10},
		"list":   []any{map[string]any{"p": 1}, 2},
	}
	src := map[string]any{
		"b":      2,
		"nested": map[string]any{"y": 20},
		"list":   []any{map[string]any{"q": 2}},
		"skip":   lang.Undefined,
	}
	object.Merge(dst, src)
	want := map[string]any{
		"a":      1,
		"b":      2,
		"nested": map[string]any{"x": 10, "y": 20},
		"list":   []any{map[string]any{"p": 1, "q": 2}, 2},
	}
	if !lang.IsEqual(dst, want) {
		t.Fatalf("Merge = %v; want %v", dst, want)
	}
}

func TestMergeOverwrite(t *testing.T) {
	dst := map[string]any{"a": 1}
	object.Merge(dst, map[string]any{"a": 99})
	if dst["a"] != 99 {
		t.Fatal("Merge should overwrite scalar values")
	}
}
