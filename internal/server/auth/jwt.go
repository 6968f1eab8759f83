// Package auth issues and verifies the bearer tokens of the development
// backend.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the subject's user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates tokenString and returns its user ID. Expired
// tokens yield shared.ErrorTokenExpired; any other failure wraps
// shared.ErrorInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", shared.ErrorTokenExpired
		}
		return "", fmt.Errorf("%w: %v", shared.ErrorInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", shared.ErrorInvalidToken
	}

	return claims.UserID, nil
}
