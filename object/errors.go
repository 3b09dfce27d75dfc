package object

import "errors"

// ErrInvalidQuery is returned by [Query] when the JSONPath expression cannot
// be parsed.
var ErrInvalidQuery = errors.New("object: invalid JSONPath query")
