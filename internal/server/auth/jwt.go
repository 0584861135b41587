// Package auth mints and verifies the session token stored in the auth
// cookie and checks the shared application password.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Subject is the only principal; the app has a single user.
const Subject = "pomokeeper"

func GenerateToken(secretKey []byte, validity time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   Subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// VerifyToken returns common.ErrTokenExpired for expired tokens and
// common.ErrInvalidToken for anything else that does not check out.
func VerifyToken(tokenString string, secretKey []byte) error {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject != Subject {
		return common.ErrInvalidToken
	}
	return nil
}
