package object

import (
	"strconv"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// ─────────────────────────────────────────────────────────────────────────────
// Writing into map[string]any / []any trees
// ─────────────────────────────────────────────────────────────────────────────

// Set writes value into m at path, creating intermediate containers as
// needed: a []any when the next key is an index, a map[string]any otherwise.
// Existing non-container values along the path are replaced. Slices are grown
// with nil elements when an index lies past their end.
//
//	Set(m, "user.address.postcode", "EC1")
//	Set(m, "matrix[1][0]", 7)
//
// Set reports false, leaving m untouched at that level, when the path is
// empty or addresses a slice with a non-index key.
func Set(m map[string]any, path any, value any) bool {
	keys := Keys(path)
	if len(keys) == 0 {
		return false
	}
	_, ok := setIn(m, keys, value)
	return ok
}

func setIn(node any, keys []string, value any) (any, bool) {
	key := keys[0]
	switch n := node.(type) {
	case map[string]any:
		if len(keys) == 1 {
			n[key] = value
			return n, true
		}
		child, ok := setIn(containerFor(n[key], keys[1]), keys[1:], value)
		if ok {
			n[key] = child
		}
		return n, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			return n, false
		}
		if i >= len(n) {
			n = append(n, make([]any, i+1-len(n))...)
		}
		if len(keys) == 1 {
			n[i] = value
			return n, true
		}
		child, ok := setIn(containerFor(n[i], keys[1]), keys[1:], value)
		if ok {
			n[i] = child
		}
		return n, ok
	}
	return node, false
}

func containerFor(existing any, nextKey string) any {
	switch existing.(type) {
	case map[string]any, []any:
		return existing
	}
	if i, err := strconv.Atoi(nextKey); err == nil && i >= 0 {
		return []any{}
	}
	return map[string]any{}
}

// Unset removes the entry at path from the map that holds it and reports
// whether anything was removed. Intermediate maps are not cleaned up, and
// array elements cannot be unset.
func Unset(m map[string]any, path any) bool {
	keys := Keys(path)
	if len(keys) == 0 {
		return false
	}
	parent, ok := Get(m, keys[:len(keys)-1]).(map[string]any)
	if !ok {
		return false
	}
	last := keys[len(keys)-1]
	if _, found := parent[last]; !found {
		return false
	}
	delete(parent, last)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// CloneDeep returns a deep copy of v. map[string]any and []any containers are
// copied recursively; every other value is shared.
func CloneDeep(v any) any {
	switch n := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, val := range n {
			out[k] = CloneDeep(val)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, val := range n {
			out[i] = CloneDeep(val)
		}
		return out
	}
	return v
}

// Dot flattens m into a single-level map keyed by property paths. Map keys
// are joined with "." and slice elements use bracket indices, so every key
// of the result resolves with [Get] against m. Empty maps and slices are kept
// as leaves.
//
//	Dot(map[string]any{"a": map[string]any{"b": []any{1, 2}}})
//	// → map[string]any{"a.b[0]": 1, "a.b[1]": 2}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range m {
		dotFlatten(k, v, out)
	}
	return out
}

func dotFlatten(prefix string, v any, out map[string]any) {
	switch n := v.(type) {
	case map[string]any:
		if len(n) == 0 {
			out[prefix] = n
			return
		}
		for k, val := range n {
			dotFlatten(prefix+"."+k, val, out)
		}
	case []any:
		if len(n) == 0 {
			out[prefix] = n
			return
		}
		for i, val := range n {
			dotFlatten(prefix+"["+strconv.Itoa(i)+"]", val, out)
		}
	default:
		out[prefix] = v
	}
}

// Pick returns a new map holding only the given paths of m. Missing paths
// are skipped; picked values are shared with m, not copied.
//
//	Pick(m, "user.name", "score")
func Pick(m map[string]any, paths ...string) map[string]any {
	out := make(map[string]any, len(paths))
	for _, p := range paths {
		if Has(m, p) {
			Set(out, p, Get(m, p))
		}
	}
	return out
}

// Omit returns a deep copy of m without the given paths.
func Omit(m map[string]any, paths ...string) map[string]any {
	out := CloneDeep(m).(map[string]any)
	for _, p := range paths {
		Unset(out, p)
	}
	return out
}

// Merge merges src into dst recursively and returns dst. Maps are merged key
// by key and slices index by index; any other src value overwrites the
// destination, except [lang.Undefined] which is skipped.
func Merge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		if srcVal == lang.Undefined {
			continue
		}
		dst[k] = mergeValue(dst[k], srcVal)
	}
	return dst
}

func mergeValue(dst, src any) any {
	if src == lang.Undefined {
		return dst
	}
	switch s := src.(type) {
	case map[string]any:
		if d, ok := dst.(map[string]any); ok {
			return Merge(d, s)
		}
	case []any:
		if d, ok := dst.([]any); ok {
			for i, val := range s {
				if i < len(d) {
					d[i] = mergeValue(d[i], val)
				} else {
					d = append(d, val)
				}
			}
			return d
		}
	}
	return src
}
