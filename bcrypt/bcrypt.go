package bcrypt

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blowfish"
)

const (
	// MinCost is the smallest accepted cost factor.
	MinCost = 4

	// MaxCost is the largest accepted cost factor. Each step doubles the work;
	// cost 31 runs 2^31 key-schedule rounds.
	MaxCost = 31

	// DefaultCost is the cost factor used when none is configured.
	DefaultCost = 12

	// DefaultPrefix is the version prefix used when none is configured.
	DefaultPrefix = "2b"

	// MaxPasswordLength is the number of password bytes the key schedule
	// consumes. Bytes past this limit do not influence the hash.
	MaxPasswordLength = 72
)

const (
	saltLen    = 16
	digestLen  = 23 // 24 encrypted bytes, the last one dropped as in OpenBSD
	settingLen = 7 + 22
	hashLen    = settingLen + 31
)

// magicText is the 24-byte block encrypted 64 times with the expanded key.
var magicText = []byte("OrpheanBeholderScryDoubt")

// Primitive generates bcrypt salts and hashes.
//
// Primitive is immutable after construction and safe for concurrent use as
// long as its random source is.
type Primitive struct {
	rand io.Reader
}

// New returns a Primitive drawing salts from crypto/rand.
func New() *Primitive {
	return &Primitive{rand: rand.Reader}
}

// NewWithRand returns a Primitive drawing salts from r.
// It exists for deterministic tests; production code should use [New].
func NewWithRand(r io.Reader) *Primitive {
	return &Primitive{rand: r}
}

var std = New()

// GenerateSalt returns a fresh salt setting using crypto/rand.
func GenerateSalt(cost int, prefix string) ([]byte, error) {
	return std.GenerateSalt(cost, prefix)
}

// Hash computes the bcrypt hash of password under salt.
func Hash(password, salt []byte) ([]byte, error) {
	return std.Hash(password, salt)
}

// GenerateSalt returns a 29-byte setting "$<prefix>$<cost>$<salt>" carrying
// 16 random bytes.
func (p *Primitive) GenerateSalt(cost int, prefix string) ([]byte, error) {
	if err := ValidateCost(cost); err != nil {
		return nil, err
	}
	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}

	raw := make([]byte, saltLen)
	if _, err := io.ReadFull(p.rand, raw); err != nil {
		return nil, fmt.Errorf("bcrypt: read salt: %w", err)
	}

	out := make([]byte, 0, settingLen)
	out = appendSetting(out, prefix, cost, raw)
	return out, nil
}

// Hash computes the bcrypt hash of password using the prefix, cost and salt
// embedded in salt. salt may be a setting returned by [Primitive.GenerateSalt]
// or a complete hash, in which case its digest part is ignored.
//
// Only the first [MaxPasswordLength] bytes of password are used.
func (p *Primitive) Hash(password, salt []byte) ([]byte, error) {
	s, err := parseSetting(salt, ErrInvalidSalt)
	if err != nil {
		return nil, err
	}

	sum, err := digest(password, s.cost, s.salt)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, hashLen)
	out = appendSetting(out, s.prefix, s.cost, s.salt)
	out = append(out, encodeBase64(sum)...)
	return out, nil
}

// ValidateCost reports whether cost is in [MinCost, MaxCost].
func ValidateCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: %d must be in [%d, %d]", ErrInvalidCost, cost, MinCost, MaxCost)
	}
	return nil
}

// ValidatePrefix reports whether prefix is a supported version prefix.
func ValidatePrefix(prefix string) error {
	switch prefix {
	case "2a", "2b", "2y":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
}

// digest runs EksBlowfishSetup and encrypts magicText with the result.
func digest(password []byte, cost int, salt []byte) ([]byte, error) {
	if len(password) > MaxPasswordLength {
		password = password[:MaxPasswordLength]
	}
	// The key includes the trailing NUL, as in the C implementations.
	key := make([]byte, len(password)+1)
	copy(key, password)

	c, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: key setup: %w", err)
	}
	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(salt, c)
	}

	text := make([]byte, len(magicText))
	copy(text, magicText)
	for i := 0; i < len(text); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(text[i:i+8], text[i:i+8])
		}
	}
	return text[:digestLen], nil
}

func appendSetting(dst []byte, prefix string, cost int, salt []byte) []byte {
	dst = append(dst, '$')
	dst = append(dst, prefix...)
	dst = append(dst, '$', byte('0'+cost/10), byte('0'+cost%10), '$')
	return append(dst, encodeBase64(salt)...)
}
