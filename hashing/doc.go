// Package hashing generates and verifies bcrypt password hashes.
//
// # Architecture
//
// The central type is [Hasher]: an immutable [Config] (cost factor, version
// prefix, long-password mode) in front of a [Primitive] that draws salts and
// computes hashes. The default primitive is [bcrypt.Primitive].
//
// [GeneratePasswordHash] and [CheckPasswordHash] are shortcuts that build a
// default-configured Hasher per call.
//
// # Quick start
//
//	h := hashing.New(hashing.DefaultConfig())
//
//	hash, err := h.Generate("my-secret-password")  // "$2b$12$..."
//	ok, err := h.Verify(hash, "my-secret-password") // true, nil
//
// Store the hash string verbatim. It embeds the prefix, cost and salt, so
// Verify needs nothing else, and hashes made with other costs keep verifying
// after the configured cost changes.
//
// # Configuration
//
// [FromSource] reads the host application's settings:
//
//	bcrypt_log_rounds             int,  default 12
//	bcrypt_hash_prefix            string, default "2b"
//	bcrypt_handle_long_passwords  bool, default false
//	bcrypt_normalize_unicode      bool, default false
//
// *viper.Viper satisfies [Source]; see the config package.
//
// # Long passwords
//
// bcrypt ignores password bytes past 72. With LongPasswords enabled every
// password is first replaced by its hex SHA-256 digest, so longer passwords
// stay distinct. The mode is not recorded in the hash: switching it on or off
// after hashes exist makes every existing hash fail to verify.
//
// # Errors
//
// A non-matching password is (false, nil), never an error. Empty passwords
// and malformed stored hashes wrap [ErrInvalidInput]; a cost or prefix the
// primitive rejects wraps [ErrInvalidConfiguration].
package hashing
