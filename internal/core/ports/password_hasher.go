package ports

// PasswordHasher produces and verifies salted adaptive password hashes.
// The hash string encodes algorithm, cost and salt, so Verify needs no
// side-channel information.
type PasswordHasher interface {
	// Hash returns a fresh salted hash of plaintext. Two calls with the
	// same plaintext yield different strings.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash
	// returns false, never an error.
	Verify(plaintext, hash string) bool
}
