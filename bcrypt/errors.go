package bcrypt

import "errors"

// Sentinel errors returned by the primitive.
//
// Use [errors.Is] for comparisons:
//
//	_, err := bcrypt.GenerateSalt(cost, prefix)
//	if errors.Is(err, bcrypt.ErrInvalidCost) {
//	    // cost outside [MinCost, MaxCost]
//	}
var (
	// ErrInvalidCost is returned when a cost factor falls outside
	// [MinCost, MaxCost].
	ErrInvalidCost = errors.New("bcrypt: invalid cost")

	// ErrInvalidPrefix is returned when a version prefix is not one of
	// "2a", "2b" or "2y".
	ErrInvalidPrefix = errors.New("bcrypt: invalid version prefix")

	// ErrInvalidSalt is returned by [Hash] when the salt argument is neither
	// a 29-byte setting nor a 60-byte hash, or when its salt characters fall
	// outside the bcrypt alphabet.
	ErrInvalidSalt = errors.New("bcrypt: invalid salt")

	// ErrInvalidHash is returned by [Parse] when a stored hash is malformed.
	ErrInvalidHash = errors.New("bcrypt: invalid hash")
)
