// Package jwtx signs and checks the HS256 session tokens handed to browsers
// and API clients.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims identify the user a session belongs to. Authorization is
// always resolved against the store, so no roles or scopes travel in the
// token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// NewSessionClaims builds claims valid from issuedAt for ttl.
func NewSessionClaims(subject, issuer string, issuedAt time.Time, ttl time.Duration) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
}

// Expiry returns exp, or the zero time when the claim is absent.
func (c SessionClaims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// ExpiredAt reports whether the token is past its expiry at now. Tokens
// without exp are treated as expired.
func (c SessionClaims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return now.After(c.ExpiresAt.Time)
}
