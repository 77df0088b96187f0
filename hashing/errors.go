package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Verify(hash, password)
//	if errors.Is(err, hashing.ErrInvalidInput) {
//	    // caller bug: empty password or malformed stored hash
//	}
//
// Errors caused by the primitive wrap both the sentinel below and the
// primitive's own error (for example [bcrypt.ErrInvalidCost]).
var (
	// ErrInvalidInput is returned by Generate for an empty password and by
	// Verify, Info and NeedsRehash for a stored hash that cannot be parsed.
	// A well-formed hash that does not match is not an error.
	ErrInvalidInput = errors.New("hashing: invalid input")

	// ErrInvalidConfiguration is returned by Generate when the primitive
	// rejects the effective cost factor or version prefix.
	ErrInvalidConfiguration = errors.New("hashing: invalid configuration")
)
