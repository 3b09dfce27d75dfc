package hashing

import "errors"

// Sentinel errors returned by [New].
//
// Use [errors.Is] for comparisons:
//
//	_, err := hashing.New(opts)
//	if errors.Is(err, hashing.ErrInvalidOption) {
//	    // key too long
//	}
var (
	// ErrUnknownAlgorithm is returned when [Options.Algorithm] names an
	// algorithm this package does not implement.
	ErrUnknownAlgorithm = errors.New("hashing: unknown algorithm")

	// ErrInvalidOption is returned when an option value falls outside the
	// allowed range (e.g., a BLAKE2s key longer than 32 bytes).
	ErrInvalidOption = errors.New("hashing: invalid option value")
)
