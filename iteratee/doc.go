// Package iteratee turns loosely-typed selectors into callable predicates and
// extractors.
//
// Every higher-level helper in this module accepts a selector wherever it
// needs a callback. The accepted shapes are interchangeable:
//
//	iteratee.New("user.name")                           // property extractor
//	iteratee.New(map[string]any{"active": true})        // partial-match predicate
//	iteratee.New([]any{"user.age", 30})                 // [path, value] predicate
//	iteratee.New(func(v any) bool { return v != nil })  // callable, used as is
//
// [From] is the only place where the shape of a selector is probed at
// runtime. It produces a [Selector], a closed tagged union, and [Resolve]
// switches exhaustively on its [Kind]. Shapes that [From] does not recognise
// resolve to the identity function rather than failing.
//
// Resolved functions are pure: they keep no state between calls and do not
// retain the values they are applied to.
package iteratee
