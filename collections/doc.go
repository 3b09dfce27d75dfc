// Package collections provides a generic, fluent Collection type whose
// filtering, searching and grouping methods accept lodash-style selectors.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a chainable API:
//
//	users, _ := collections.FromJSON[map[string]any](data)
//	names := users.
//	    Where("address.city", "London").
//	    Reject(map[string]any{"active": false}).
//	    SortBy("age").
//	    Pluck("name")
//
// Every predicate or selector argument accepts the shapes understood by
// [iteratee.From]: a property path, a partial-match object, a [path, value]
// pair or a func.
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. This makes Collection values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Equality and grouping
//
// [Collection.Contains], [Collection.Unique], [Collection.GroupBy],
// [Collection.CountBy] and [Collection.KeyBy] compare with [lang.IsEqual], so
// maps and slices work as values and keys. Groups keep first-seen order.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions: [Map], [Reduce], [Collapse], [FlattenDeep].
//
// # Serialisation
//
// [FromJSON] / [Collection.ToJSON] use encoding/json; [FromYAML] /
// [Collection.ToYAML] use github.com/goccy/go-yaml. Decoding failures wrap
// [ErrDecode].
package collections
