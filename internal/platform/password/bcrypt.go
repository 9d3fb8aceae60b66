// Package password provides the bcrypt implementation of the usecase.PasswordHasher interface.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit. The algorithm only reads the
// first 72 bytes; truncating explicitly keeps Hash and Verify consistent
// for longer passwords instead of failing with ErrPasswordTooLong.
const maxPasswordBytes = 72

// BcryptHasher hashes and verifies passwords with bcrypt.
// bcrypt embeds a random salt per call, so hashing the same password
// twice yields different hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost.
// A cost outside bcrypt's supported range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the plaintext password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(passwordBytes(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the hash.
// Malformed hashes are treated as a mismatch, never an error.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(plaintext)) == nil
}

func passwordBytes(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
