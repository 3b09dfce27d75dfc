// Package hashing computes structural fingerprints of loosely-typed values.
//
// # Fingerprints
//
// [Sum] hashes a canonical encoding of a value with BLAKE2. The encoding
// follows the equality rules of [lang.IsEqual]:
//
//   - numbers encode by value, so int(1), uint8(1) and 1.0 share a digest
//   - plain objects encode their keys in sorted order, whatever the map type
//   - arrays encode their elements in order, whatever the slice type
//   - boxed primitives and time.Time encode their primitive conversion
//   - functions, regexps and pointers encode their address
//
// Values that are deeply equal therefore always share a [Digest]. Distinct
// values may collide, so callers that bucket by digest must still confirm
// membership with [lang.IsEqual] or [lang.SameValueZero]. The arr and
// collections packages use digests this way to deduplicate and group values
// that cannot be Go map keys.
//
// # Algorithms
//
//   - [BLAKE2b]: BLAKE2b-256, the default
//   - [BLAKE2s]: BLAKE2s-256, faster on 32-bit platforms
//
// Both accept an optional key (see [Options]), turning the digest into a MAC.
//
// # Quick start
//
//	d := hashing.Sum(map[string]any{"id": 1, "tags": []any{"a"}})
//	fmt.Println(d) // 64 hex characters
//
//	h, err := hashing.New(hashing.Options{Algorithm: hashing.BLAKE2s, Key: key})
//	if err != nil { log.Fatal(err) }
//	d = h.Sum(value)
//
// Encoding does not detect cycles; a self-referencing value never returns.
package hashing
