// Package auth implements issuing and verifying the signed bearer tokens
// that bind a session to a single account. Tokens are stateless: validity
// is determined entirely by signature and expiry at verification time.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the account identifier
// the token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken issues an HS256-signed token for the given account id,
// valid for validityDuration from now. The secret key is an explicit
// dependency so it can be swapped per test.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrServerConfiguration
	}

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

// GetUserIDFromToken verifies tokenString against secretKey and returns the
// embedded account id. Failures map to typed sentinels so callers can
// distinguish them:
//
//	common.ErrTokenMalformed    - not a parseable JWT
//	common.ErrTokenExpired      - signature fine, expiry passed
//	common.ErrTokenBadSignature - signed with a different key
//
// An expired token always yields ErrTokenExpired, never ErrTokenBadSignature.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrServerConfiguration
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenBadSignature
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenBadSignature
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", common.ErrTokenMalformed
	}

	return claims.UserID, nil
}
