package hashing

import (
	"github.com/spf13/cast"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// Configuration keys read by [FromSource]. Environment-backed sources
// usually expose them upper-cased (BCRYPT_LOG_ROUNDS, ...).
const (
	KeyLogRounds        = "bcrypt_log_rounds"
	KeyHashPrefix       = "bcrypt_hash_prefix"
	KeyLongPasswords    = "bcrypt_handle_long_passwords"
	KeyNormalizeUnicode = "bcrypt_normalize_unicode"
)

// Config configures a [Hasher]. It is a plain value: the Hasher keeps its
// own copy, so later changes to a Config never affect an existing Hasher.
type Config struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)], enforced when
	// hashing. Default: [bcrypt.DefaultCost] (12).
	Cost int

	// Prefix selects the hash format revision: "2a", "2b" or "2y".
	// Default: [bcrypt.DefaultPrefix] ("2b").
	Prefix string

	// LongPasswords replaces every password with the hex SHA-256 digest of
	// its bytes before hashing, lifting bcrypt's 72-byte limit.
	//
	// The setting is not recorded in the hash. Enabling it on a system that
	// already stores hashes, or disabling it afterwards, breaks verification
	// of every existing hash.
	LongPasswords bool

	// NormalizeUnicode applies Unicode NFC normalization to passwords before
	// any other transform, so that visually identical input typed on
	// different platforms hashes identically. Like LongPasswords it is not
	// recorded in the hash and must not change once hashes exist.
	NormalizeUnicode bool
}

// DefaultConfig returns the default configuration: cost 12, prefix "2b",
// long-password mode off.
func DefaultConfig() Config {
	return Config{
		Cost:   bcrypt.DefaultCost,
		Prefix: bcrypt.DefaultPrefix,
	}
}

// Source is a host configuration source, such as an application's settings
// object. *viper.Viper satisfies it.
type Source interface {
	IsSet(key string) bool
	GetInt(key string) int
	GetString(key string) string
	GetBool(key string) bool
}

// FromSource builds a Config from src, starting from [DefaultConfig] and
// overriding every key that src reports as set. Values are taken as they
// are; an out-of-range cost or unknown prefix surfaces as
// [ErrInvalidConfiguration] on the first Generate.
func FromSource(src Source) Config {
	cfg := DefaultConfig()
	if src == nil {
		return cfg
	}
	if src.IsSet(KeyLogRounds) {
		cfg.Cost = src.GetInt(KeyLogRounds)
	}
	if src.IsSet(KeyHashPrefix) {
		cfg.Prefix = src.GetString(KeyHashPrefix)
	}
	if src.IsSet(KeyLongPasswords) {
		cfg.LongPasswords = src.GetBool(KeyLongPasswords)
	}
	if src.IsSet(KeyNormalizeUnicode) {
		cfg.NormalizeUnicode = src.GetBool(KeyNormalizeUnicode)
	}
	return cfg
}

// MapSource is a [Source] backed by a map, for hosts that already hold
// their settings in memory.
//
//	cfg := hashing.FromSource(hashing.MapSource{"bcrypt_log_rounds": 10})
type MapSource map[string]any

// IsSet reports whether key is present.
func (m MapSource) IsSet(key string) bool {
	_, ok := m[key]
	return ok
}

// GetInt converts the value for key to int. Any integer or float type and
// numeric strings such as "10" are accepted; anything else reads as 0.
func (m MapSource) GetInt(key string) int {
	return cast.ToInt(m[key])
}

// GetString converts the value for key to string.
func (m MapSource) GetString(key string) string {
	return cast.ToString(m[key])
}

// GetBool converts the value for key to bool. Strings are parsed with
// strconv.ParseBool; unparsable values read as false.
func (m MapSource) GetBool(key string) bool {
	return cast.ToBool(m[key])
}
