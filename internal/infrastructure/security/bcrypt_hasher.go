// Package security provides the password hashing and token signing
// adapters behind the core's ports.
package security

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used when none is configured. Cost 10
// keeps a single comparison above ~50ms on current server hardware.
const DefaultCost = 10

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. The
// produced hash string encodes algorithm, cost and salt, so verification
// needs nothing beyond the stored string.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Out-of-range
// costs fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a fresh salted hash of plaintext. Non-deterministic: each
// call salts anew.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes return
// false. The digest comparison inside bcrypt is constant-time.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
