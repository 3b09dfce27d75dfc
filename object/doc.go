// Package object reads and writes values inside nested data using property
// paths.
//
// # Path grammar
//
// A path string is split on ".", "[" and "]" and empty segments are dropped,
// so bracket and dot notation are interchangeable:
//
//	object.ToPath("a.b[0].c")  // → ["a", "b", "0", "c"]
//	object.ToPath("a[b].c")    // → ["a", "b", "c"]
//
// # Lookup
//
// [Get] walks a path one property at a time (see [lang.Property] for what a
// property is) and stops as soon as a segment is missing. A missing value is
// reported as the caller's default, or [lang.Undefined] when none is given;
// lookups never fail:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//	object.Get(m, "user.tags[1]")            // → "ops"
//	object.Get(m, "user.address.city", "-")  // → "-"
//
// # Writing
//
// [Set], [Unset], [Merge], [Pick] and [Omit] operate on map[string]any and
// []any trees such as those produced by encoding/json or YAML decoders.
//
// # JSONPath
//
// [Query] evaluates RFC 9535 JSONPath expressions for selections that the
// plain path grammar cannot express (wildcards, slices, filters).
package object
