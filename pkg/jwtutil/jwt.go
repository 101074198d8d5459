package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	xerrors "portal-auth-service/pkg/utils/errors"
)

// Claims carries the authenticated user ID alongside the registered claims.
// The token is deliberately minimal: no issuer, no audience, no kid.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. An empty secret is a configuration error and
// must abort startup; it is never checked per-request.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwtutil: signing secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("jwtutil: token ttl must be positive")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the validity window tokens are issued with.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue creates a signed token for userID, valid for the issuer's TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return token.SignedString(i.secret)
}

// Verify parses tokenStr and returns the embedded user ID. It distinguishes
// malformed tokens, expired tokens, and bad signatures so callers can log the
// difference; all three mean "not authenticated".
func (i *Issuer) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", xerrors.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", xerrors.ErrTokenExpired
		default:
			return "", xerrors.ErrInvalidToken
		}
	}
	if !token.Valid || claims.UserID == "" {
		return "", xerrors.ErrInvalidToken
	}
	return claims.UserID, nil
}
