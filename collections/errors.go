package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FindOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrDecode is returned by FromJSON and FromYAML when the input is not a
	// sequence of values assignable to the element type.
	ErrDecode = errors.New("collections: cannot decode items")

	// ErrEncode is returned by ToJSON and ToYAML when an item cannot be
	// serialised (e.g. a func or channel).
	ErrEncode = errors.New("collections: cannot encode items")
)
