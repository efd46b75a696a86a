// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

const issuer = "devconnector-api"

// UserClaim is the user block embedded in the token payload.
type UserClaim struct {
	ID uint `json:"id"`
}

// Claims is the full token payload: the user identity plus the registered
// claim set (expiry, issuer, JTI).
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a shared HMAC secret. It is a pure
// function of secret, payload and clock; there is no revocation list and
// expiry is the only invalidation mechanism.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService returns a token service using the given secret and lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token encoding the given user id, valid for the
// configured lifetime.
func (s *Service) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	now := time.Now()
	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// user id. It never consults the store: identity resolution is secret+clock
// only.
func (s *Service) Verify(tokenString string) (uint, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.User.ID, nil
}
