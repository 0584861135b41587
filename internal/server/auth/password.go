package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// IsHash reports whether a configured password is a bcrypt hash.
func IsHash(configured string) bool {
	return strings.HasPrefix(configured, "$2")
}

// CheckPassword compares supplied against the configured password, which may
// be plain text or a bcrypt hash.
func CheckPassword(configured, supplied string) bool {
	if IsHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}

func HashPassword(plain []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(plain, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
