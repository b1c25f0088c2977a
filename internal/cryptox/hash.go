// Package cryptox wraps password hashing for the account manager.
//
// Hashes are produced with bcrypt, so the salt is embedded in the output and
// two hashes of the same plaintext never compare equal as strings.
package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of the given plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// The comparison is constant-time; a mismatch or a malformed hash both
// return false.
func VerifyPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
