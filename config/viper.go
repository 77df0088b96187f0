// Package config loads bcrypt settings for a host application with
// github.com/spf13/viper.
//
// Keys are the ones listed in the hashing package (bcrypt_log_rounds,
// bcrypt_hash_prefix, bcrypt_handle_long_passwords,
// bcrypt_normalize_unicode). Every loader also reads the upper-cased
// environment variables, which take precedence over file values:
//
//	BCRYPT_LOG_ROUNDS=13 ./server
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

var keys = []string{
	hashing.KeyLogRounds,
	hashing.KeyHashPrefix,
	hashing.KeyLongPasswords,
	hashing.KeyNormalizeUnicode,
}

// Viper is a [hashing.Source] backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// New returns a Viper that reads the environment only.
func New() *Viper {
	return &Viper{v: newViper()}
}

// Load reads the config file at path and returns a Viper-backed source.
//
// The config file type is inferred by Viper from the filename extension.
func Load(path string) (*Viper, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &Viper{v: v}, nil
}

// LoadBytes loads configuration from memory.
// configType should be a format supported by Viper (e.g. "yaml", "json", "toml").
func LoadBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config: config type is required")
	}

	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", configType, err)
	}
	return &Viper{v: v}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for _, k := range keys {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(k, strings.ToUpper(k))
	}
	return v
}

// Hashing returns the hasher configuration described by the source.
func (vc *Viper) Hashing() hashing.Config {
	return hashing.FromSource(vc)
}

// IsSet reports whether key has a value in the file or the environment.
func (vc *Viper) IsSet(key string) bool {
	return vc.v.IsSet(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}
