package hashing

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// credential turns a password into the exact bytes handed to the primitive.
// Generate and Verify both go through it, so the two paths never diverge.
//
// Strings are already UTF-8 in Go; with NormalizeUnicode the bytes are
// additionally brought to NFC. With LongPasswords the result is replaced by
// its lowercase hex SHA-256 digest: 64 printable bytes, under bcrypt's
// 72-byte limit and free of NUL bytes.
func (h *Hasher) credential(password []byte) []byte {
	if h.cfg.NormalizeUnicode {
		password = norm.NFC.Bytes(password)
	}
	if h.cfg.LongPasswords {
		sum := sha256.Sum256(password)
		out := make([]byte, hex.EncodedLen(len(sum)))
		hex.Encode(out, sum[:])
		password = out
	}
	return password
}
