// Package lang classifies arbitrary Go values and compares them structurally.
//
// # Tags
//
// Every value maps to exactly one [Tag]:
//
//	lang.Classify("x")                     // → TagString
//	lang.Classify(3.5)                     // → TagNumber
//	lang.Classify([]any{1, 2})             // → TagArray
//	lang.Classify(map[string]any{"a": 1})  // → TagPlainObject
//	lang.Classify(nil)                     // → TagNull
//	lang.Classify(lang.Undefined)          // → TagUndefined
//	lang.Classify(lang.Box(1))             // → TagObjectLike
//
// Downstream comparisons switch on the tag instead of probing the value again.
//
// # Equality
//
// [IsEqual] is a deep, structural comparison: plain objects are compared by
// their sorted key sets and recursively equal values, arrays element by
// element, and NaN is equal to itself. [IsMatch] is the subset form used by
// partial-match selectors, and [SameValueZero] is the shallow identity check
// used for index lookups.
//
//	lang.IsEqual(map[string]any{"a": []any{1, 2}}, map[string]any{"a": []any{1, 2}}) // → true
//	lang.IsMatch(map[string]any{"a": 1, "b": 2}, map[string]any{"a": 1})             // → true
//
// IsEqual has no cycle guard. Self-referential inputs recurse until the stack
// is exhausted, so callers handling untrusted, deeply nested input should
// bound its depth first.
package lang
