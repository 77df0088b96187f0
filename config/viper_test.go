package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt/config"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

var _ hashing.Source = (*config.Viper)(nil)

func TestLoadBytes_YAML(t *testing.T) {
	data := []byte(`
bcrypt_log_rounds: 10
bcrypt_hash_prefix: "2a"
bcrypt_handle_long_passwords: true
`)
	src, err := config.LoadBytes("yaml", data)
	require.NoError(t, err)

	assert.Equal(t, hashing.Config{Cost: 10, Prefix: "2a", LongPasswords: true}, src.Hashing())
}

func TestLoadBytes_JSONPartial(t *testing.T) {
	src, err := config.LoadBytes("json", []byte(`{"bcrypt_normalize_unicode": true}`))
	require.NoError(t, err)

	cfg := src.Hashing()
	assert.Equal(t, 12, cfg.Cost)
	assert.Equal(t, "2b", cfg.Prefix)
	assert.True(t, cfg.NormalizeUnicode)
}

func TestLoadBytes_Errors(t *testing.T) {
	_, err := config.LoadBytes("  ", []byte("a: 1"))
	assert.Error(t, err)

	_, err = config.LoadBytes("json", []byte("{not json"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcrypt.toml")
	require.NoError(t, os.WriteFile(path, []byte("bcrypt_log_rounds = 11\nbcrypt_hash_prefix = \"2y\"\n"), 0o600))

	src, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, hashing.Config{Cost: 11, Prefix: "2y"}, src.Hashing())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNew_Environment(t *testing.T) {
	t.Setenv("BCRYPT_LOG_ROUNDS", "13")
	t.Setenv("BCRYPT_HANDLE_LONG_PASSWORDS", "true")

	cfg := config.New().Hashing()
	assert.Equal(t, 13, cfg.Cost)
	assert.Equal(t, "2b", cfg.Prefix)
	assert.True(t, cfg.LongPasswords)
	assert.False(t, cfg.NormalizeUnicode)
}

func TestNew_NothingSet(t *testing.T) {
	assert.Equal(t, hashing.DefaultConfig(), config.New().Hashing())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("BCRYPT_HASH_PREFIX", "2a")

	src, err := config.LoadBytes("yaml", []byte("bcrypt_hash_prefix: 2y\n"))
	require.NoError(t, err)
	assert.Equal(t, "2a", src.Hashing().Prefix)
}
