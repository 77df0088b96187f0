package hashing

// GeneratePasswordHash hashes password with a default-configured [Hasher].
// Use [WithRounds] to pick a cost other than 12:
//
//	hash, err := hashing.GeneratePasswordHash("hunter2", hashing.WithRounds(10))
func GeneratePasswordHash(password string, opts ...GenerateOption) (string, error) {
	return New(DefaultConfig()).Generate(password, opts...)
}

// CheckPasswordHash verifies password against hash with a default-configured
// [Hasher]. It cannot check hashes produced in long-password mode.
func CheckPasswordHash(hash, password string) (bool, error) {
	return New(DefaultConfig()).Verify(hash, password)
}
