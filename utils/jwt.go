package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and verifies session tokens. The secret is injected once
// at startup instead of being read from the environment on every call.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(memberID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  memberID,
		"exp": time.Now().Add(t.ttl).Unix(),
	})
	return token.SignedString(t.secret)
}

// Verify returns the member id embedded in the token. Expired or tampered
// tokens fail with an opaque error; callers map it to 401.
func (t *TokenIssuer) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("id claim missing")
	}
	return uint(id), nil
}
