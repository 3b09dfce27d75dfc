package hashing

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// Algorithm identifies a digest algorithm.
type Algorithm string

const (
	// BLAKE2b selects BLAKE2b-256 (default).
	BLAKE2b Algorithm = "blake2b"
	// BLAKE2s selects BLAKE2s-256.
	BLAKE2s Algorithm = "blake2s"
)

// Size is the length of a [Digest] in bytes.
const Size = 32

// Digest is a 256-bit structural fingerprint. It is comparable and can be
// used as a map key.
type Digest [Size]byte

// String returns the lowercase hex encoding of d.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

// Options configures a [Hasher].
type Options struct {
	// Algorithm selects the digest algorithm.
	// Default: [BLAKE2b].
	Algorithm Algorithm

	// Key turns the digest into a keyed MAC. At most 64 bytes for BLAKE2b
	// and 32 bytes for BLAKE2s. Default: none.
	Key []byte
}

// DefaultOptions returns Options selecting unkeyed BLAKE2b-256.
func DefaultOptions() Options {
	return Options{Algorithm: BLAKE2b}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hasher
// ──────────────────────────────────────────────────────────────────────────────

// Hasher computes digests with a fixed algorithm and key.
//
// A Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	alg Algorithm
	key []byte
}

// std backs the package-level [Sum].
var std = &Hasher{alg: BLAKE2b}

// New constructs a Hasher. An empty Algorithm selects [BLAKE2b].
// Returns [ErrUnknownAlgorithm] for an unsupported algorithm and
// [ErrInvalidOption] when the key is too long.
func New(opts Options) (*Hasher, error) {
	alg := opts.Algorithm
	if alg == "" {
		alg = BLAKE2b
	}
	if alg != BLAKE2b && alg != BLAKE2s {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}

	h := &Hasher{alg: alg, key: bytes.Clone(opts.Key)}
	if _, err := h.newHash(); err != nil {
		return nil, fmt.Errorf("%w: %s key of %d bytes: %v", ErrInvalidOption, alg, len(opts.Key), err)
	}
	return h, nil
}

// Algorithm returns the algorithm h uses.
func (h *Hasher) Algorithm() Algorithm { return h.alg }

func (h *Hasher) newHash() (hash.Hash, error) {
	if h.alg == BLAKE2s {
		return blake2s.New256(h.key)
	}
	return blake2b.New256(h.key)
}

// Sum returns the fingerprint of v.
func (h *Hasher) Sum(v any) Digest {
	w, _ := h.newHash() // key length checked by New
	e := encoder{w: w}
	e.encode(v)

	var d Digest
	w.Sum(d[:0])
	return d
}

// Sum returns the unkeyed BLAKE2b-256 fingerprint of v.
//
//	hashing.Sum([]any{1, 2}) == hashing.Sum([]int{1, 2}) // true
func Sum(v any) Digest {
	return std.Sum(v)
}
