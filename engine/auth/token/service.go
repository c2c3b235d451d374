// Package token issues and verifies the signed credentials carried in the
// session cookie.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, badly signed, or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the credential payload: the caller's email plus the registered
// issued-at/expiry claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 credentials with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl}
}

// Issue produces a signed credential for the given email. Every token
// carries an expiry so a leaked cookie cannot be replayed indefinitely.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a credential, returning its claims. Signature
// mismatch, malformed input, a wrong signing method, and expiry all map to
// ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
