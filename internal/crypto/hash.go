package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for all stored password hashes.
const hashCost = 10

// HashPassword hashes a password using bcrypt with a per-hash random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
