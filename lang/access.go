package lang

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Property looks up a single own property of v:
//
//   - plain objects: the entry stored under key
//   - arrays and strings: the element at a decimal index, or "length"
//   - structs and pointers to structs: the exported field whose name or json
//     tag equals key
//
// ok is false, and the returned value is [Undefined], when v has no such
// property. Property never panics.
func Property(v any, key string) (any, bool) {
	switch o := v.(type) {
	case nil, undefined:
		return Undefined, false
	case map[string]any:
		if val, ok := o[key]; ok {
			return val, true
		}
		return Undefined, false
	case []any:
		return indexProperty(len(o), key, func(i int) any { return o[i] })
	case string:
		return stringProperty(o, key)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Undefined, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Undefined, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return Undefined, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		return indexProperty(rv.Len(), key, func(i int) any { return rv.Index(i).Interface() })
	case reflect.String:
		return stringProperty(rv.String(), key)
	case reflect.Struct:
		if i, ok := fieldIndex(rv.Type(), key); ok {
			return rv.Field(i).Interface(), true
		}
	}
	return Undefined, false
}

func indexProperty(n int, key string, at func(int) any) (any, bool) {
	if key == "length" {
		return n, true
	}
	i, ok := arrayIndex(key)
	if !ok || i >= n {
		return Undefined, false
	}
	return at(i), true
}

func stringProperty(s, key string) (any, bool) {
	if key == "length" {
		return utf8.RuneCountInString(s), true
	}
	i, ok := arrayIndex(key)
	if !ok {
		return Undefined, false
	}
	for _, r := range s {
		if i == 0 {
			return string(r), true
		}
		i--
	}
	return Undefined, false
}

// arrayIndex parses a canonical non-negative decimal index ("0", "12", not
// "012" or "+1").
func arrayIndex(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

func fieldIndex(t reflect.Type, key string) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok && name == key {
			return i, true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() && f.Name == key {
			return i, true
		}
	}
	return 0, false
}

// fieldName returns the property name of an exported struct field: its json
// tag name when present, otherwise the Go field name.
func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return f.Name, true
}

// Keys returns the own enumerable property names of v in ascending order:
// map keys, array and string indices, or exported struct field names. It
// returns nil for values without properties.
func Keys(v any) []string {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return keys
	}
	if IsNil(v) {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return keys
	case reflect.Slice, reflect.Array:
		return indexKeys(rv.Len())
	case reflect.String:
		return indexKeys(utf8.RuneCountInString(rv.String()))
	case reflect.Struct:
		keys := make([]string, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if name, ok := fieldName(rv.Type().Field(i)); ok {
				keys = append(keys, name)
			}
		}
		slices.Sort(keys)
		return keys
	}
	return nil
}

func indexKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// ToSlice returns the elements of an array value as []any. A []any is
// returned as is; other slice and array kinds are copied. Non-arrays yield
// nil.
func ToSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	if Classify(v) != TagArray {
		return nil
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
