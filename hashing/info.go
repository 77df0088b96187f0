package hashing

import (
	"fmt"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// HashInfo carries the parameters embedded in a stored hash.
//
// Whether LongPasswords or NormalizeUnicode was active is not recoverable
// from a hash and therefore not reported.
type HashInfo struct {
	// Prefix is the version prefix, e.g. "2b".
	Prefix string

	// Cost is the work factor the hash was produced with.
	Cost int
}

// Info extracts the parameters of hash without verifying it.
// Useful for auditing, migration tooling, or logging.
func (h *Hasher) Info(hash string) (HashInfo, error) {
	p, err := bcrypt.Parse([]byte(hash))
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return HashInfo{Prefix: p.Prefix, Cost: p.Cost}, nil
}

// NeedsRehash reports whether hash was produced with a cost or prefix other
// than the Hasher's configuration. Callers should re-hash the password on
// the next successful Verify when this returns true.
func (h *Hasher) NeedsRehash(hash string) (bool, error) {
	info, err := h.Info(hash)
	if err != nil {
		return false, err
	}
	return info.Cost != h.cfg.Cost || info.Prefix != h.cfg.Prefix, nil
}
