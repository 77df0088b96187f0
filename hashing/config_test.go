package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

func TestFromSource_NilUsesDefaults(t *testing.T) {
	assert.Equal(t, hashing.DefaultConfig(), hashing.FromSource(nil))
}

func TestFromSource_EmptyUsesDefaults(t *testing.T) {
	assert.Equal(t, hashing.DefaultConfig(), hashing.FromSource(hashing.MapSource{}))
}

func TestFromSource_OverridesSetKeys(t *testing.T) {
	cfg := hashing.FromSource(hashing.MapSource{
		hashing.KeyLogRounds:        10,
		hashing.KeyHashPrefix:       "2a",
		hashing.KeyLongPasswords:    true,
		hashing.KeyNormalizeUnicode: true,
	})
	assert.Equal(t, hashing.Config{
		Cost:             10,
		Prefix:           "2a",
		LongPasswords:    true,
		NormalizeUnicode: true,
	}, cfg)
}

func TestFromSource_PartialOverride(t *testing.T) {
	cfg := hashing.FromSource(hashing.MapSource{hashing.KeyLongPasswords: true})
	assert.Equal(t, 12, cfg.Cost)
	assert.Equal(t, "2b", cfg.Prefix)
	assert.True(t, cfg.LongPasswords)
}

func TestFromSource_DoesNotValidate(t *testing.T) {
	cfg := hashing.FromSource(hashing.MapSource{hashing.KeyLogRounds: 99})
	assert.Equal(t, 99, cfg.Cost)

	_, err := newTestHasher(t, func(c *hashing.Config) { *c = cfg }).Generate("secret")
	assert.ErrorIs(t, err, hashing.ErrInvalidConfiguration)
}

func TestMapSource_ConvertsHostTypes(t *testing.T) {
	cases := []struct {
		name string
		src  hashing.MapSource
	}{
		{"int", hashing.MapSource{hashing.KeyLogRounds: 10, hashing.KeyLongPasswords: true}},
		{"int64", hashing.MapSource{hashing.KeyLogRounds: int64(10), hashing.KeyLongPasswords: true}},
		{"decoded json", hashing.MapSource{hashing.KeyLogRounds: float64(10), hashing.KeyLongPasswords: true}},
		{"strings", hashing.MapSource{hashing.KeyLogRounds: "10", hashing.KeyLongPasswords: "true"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := hashing.FromSource(tc.src)
			assert.Equal(t, 10, cfg.Cost)
			assert.True(t, cfg.LongPasswords)
		})
	}
}

func TestMapSource_UnconvertibleReadAsZero(t *testing.T) {
	src := hashing.MapSource{
		hashing.KeyLogRounds:     "ten",
		hashing.KeyHashPrefix:    nil,
		hashing.KeyLongPasswords: "yes",
	}
	assert.True(t, src.IsSet(hashing.KeyLogRounds))
	assert.Equal(t, 0, src.GetInt(hashing.KeyLogRounds))
	assert.Equal(t, "", src.GetString(hashing.KeyHashPrefix))
	assert.False(t, src.GetBool(hashing.KeyLongPasswords))
	assert.False(t, src.IsSet(hashing.KeyNormalizeUnicode))
}
