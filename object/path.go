package object

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/theory/jsonpath"
)

// ToPath splits a property path string into its keys. The delimiters ".",
// "[" and "]" are interchangeable and empty segments are discarded.
func ToPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '[' || r == ']'
	})
}

// Keys normalises a path argument: a path string, a []string of keys, a
// []any of keys (formatted with fmt), or a single non-string key such as an
// index.
func Keys(path any) []string {
	switch p := path.(type) {
	case nil:
		return nil
	case string:
		return ToPath(p)
	case []string:
		return p
	case []any:
		keys := make([]string, len(p))
		for i, k := range p {
			keys[i] = fmt.Sprint(k)
		}
		return keys
	}
	if lang.IsArray(path) {
		return Keys(lang.ToSlice(path))
	}
	return []string{fmt.Sprint(path)}
}

// Get resolves path against obj. When any segment is missing, including when
// an intermediate value is nil, Get returns def[0], or [lang.Undefined] when no
// default is given. A property that exists and holds nil is returned as nil.
//
//	Get(m, "user.address.city")       // "London"
//	Get(m, []string{"user", "name"})  // "Alice"
//	Get(m, "user.missing", "default") // "default"
func Get(obj any, path any, def ...any) any {
	cur := obj
	for _, key := range Keys(path) {
		if cur == lang.Undefined {
			break
		}
		cur, _ = lang.Property(cur, key)
	}
	if cur == lang.Undefined {
		if len(def) > 0 {
			return def[0]
		}
		return lang.Undefined
	}
	return cur
}

// Has reports whether every segment of path exists in obj.
func Has(obj any, path any) bool {
	keys := Keys(path)
	if len(keys) == 0 {
		return false
	}
	cur := obj
	for _, key := range keys {
		next, ok := lang.Property(cur, key)
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

// Query selects every node of obj matched by the JSONPath expression expr.
// obj should be a tree of map[string]any, []any and primitives; Go structs
// are not traversed. Parse failures wrap [ErrInvalidQuery].
//
//	Query(m, "$.users[?@.age > 30].name")
func Query(obj any, expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, expr, err)
	}
	return []any(path.Select(obj)), nil
}
