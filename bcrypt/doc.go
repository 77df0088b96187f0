// Package bcrypt exposes the bcrypt adaptive hash at the salt level.
//
// golang.org/x/crypto/bcrypt only offers GenerateFromPassword and
// CompareHashAndPassword, which pin the version prefix to "2a" and reject
// passwords longer than 72 bytes. This package drives the same Blowfish key
// schedule (golang.org/x/crypto/blowfish) through two smaller operations:
//
//	salt, err := bcrypt.GenerateSalt(12, "2b") // "$2b$12$<22 chars>"
//	hash, err := bcrypt.Hash(password, salt)    // "$2b$12$<22 chars><31 chars>"
//
// The cost factor and version prefix travel inside the salt and are copied
// into every hash produced with it, so Hash(password, storedHash) recomputes
// the stored value for the right password.
//
// # Hash format
//
//	$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW
//	 \/ \/ \____________________/\_____________________________/
//	 |  |          salt                       digest
//	 |  cost
//	 prefix
//
// Salt and digest use the bcrypt base64 alphabet ("./A-Za-z0-9", no padding).
//
// # Long passwords
//
// bcrypt keys Blowfish with at most [MaxPasswordLength] bytes. Longer inputs
// are truncated silently: two passwords sharing their first 72 bytes produce
// the same hash.
package bcrypt
