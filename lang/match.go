package lang

// IsMatch reports whether object is the same value as source, or holds every
// own property of source with a deeply equal value. Properties of object that
// source does not mention are ignored, so the direction matters:
//
//	IsMatch(map[string]any{"a": 1, "b": 2}, map[string]any{"a": 1}) // → true
//	IsMatch(map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}) // → false
//
// object may be a plain object, an array or a struct; struct fields are
// matched by name or json tag.
func IsMatch(object, source any) bool {
	if strictEqual(object, source) {
		return true
	}
	for _, key := range Keys(source) {
		want, _ := Property(source, key)
		got, ok := Property(object, key)
		if !ok || !IsEqual(got, want) {
			return false
		}
	}
	return true
}
