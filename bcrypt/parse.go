package bcrypt

import "fmt"

// Params holds the fields of a stored bcrypt hash.
type Params struct {
	// Prefix is the version prefix without dollar signs, e.g. "2b".
	Prefix string

	// Cost is the log2 of the key-schedule rounds.
	Cost int

	// Salt is the decoded 16-byte salt.
	Salt []byte

	// Digest is the decoded 23-byte digest.
	Digest []byte
}

// Parse splits a 60-byte bcrypt hash into its fields. It does not verify
// anything; it only checks the layout, the prefix, the cost range and the
// base64 alphabet.
func Parse(hash []byte) (Params, error) {
	if len(hash) != hashLen {
		return Params{}, fmt.Errorf("%w: length %d, want %d", ErrInvalidHash, len(hash), hashLen)
	}
	s, err := parseSetting(hash, ErrInvalidHash)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Prefix: s.prefix,
		Cost:   s.cost,
		Salt:   s.salt,
		Digest: s.digest,
	}, nil
}

// IsHash reports whether hash has the layout of a bcrypt hash.
func IsHash(hash []byte) bool {
	_, err := Parse(hash)
	return err == nil
}

type setting struct {
	prefix string
	cost   int
	salt   []byte
	digest []byte
}

// parseSetting accepts "$pp$cc$<22 salt chars>" optionally followed by the
// 31 digest characters of a complete hash. Failures wrap kind.
func parseSetting(b []byte, kind error) (setting, error) {
	if len(b) != settingLen && len(b) != hashLen {
		return setting{}, fmt.Errorf("%w: length %d, want %d or %d", kind, len(b), settingLen, hashLen)
	}
	if b[0] != '$' || b[3] != '$' || b[6] != '$' {
		return setting{}, fmt.Errorf("%w: malformed separators", kind)
	}

	prefix := string(b[1:3])
	if err := ValidatePrefix(prefix); err != nil {
		return setting{}, fmt.Errorf("%w: %w", kind, err)
	}

	if !isDigit(b[4]) || !isDigit(b[5]) {
		return setting{}, fmt.Errorf("%w: cost %q is not numeric", kind, b[4:6])
	}
	cost := int(b[4]-'0')*10 + int(b[5]-'0')
	if err := ValidateCost(cost); err != nil {
		return setting{}, fmt.Errorf("%w: %w", kind, err)
	}

	salt, err := decodeBase64(b[7:settingLen])
	if err != nil || len(salt) != saltLen {
		return setting{}, fmt.Errorf("%w: salt is not bcrypt base64", kind)
	}

	s := setting{prefix: prefix, cost: cost, salt: salt}
	if len(b) == hashLen {
		d, err := decodeBase64(b[settingLen:])
		if err != nil || len(d) != digestLen {
			return setting{}, fmt.Errorf("%w: digest is not bcrypt base64", kind)
		}
		s.digest = d
	}
	return s, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
