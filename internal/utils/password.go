package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor applied when hashing passwords.
const BcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt using [BcryptCost].
//
// Returns the encoded hash string suitable for direct storage, or an error
// if hashing fails (e.g. the password exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash with a candidate plaintext
// password. It reports true only on an exact match; any bcrypt error
// (malformed hash, mismatch) yields false.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
