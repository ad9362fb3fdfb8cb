package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the shortest HMAC secret accepted.
const MinSecretBytes = 32

var (
	ErrSecretTooShort = errors.New("jwtx: secret too short")
	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrInvalidClaim   = errors.New("jwtx: invalid claims")
)

// HS256 signs and verifies tokens with one shared secret.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 returns a signer/verifier for issuer. An empty issuer disables
// the issuer check on Verify.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrSecretTooShort, MinSecretBytes, len(secret))
	}
	return &HS256{secret: append([]byte(nil), secret...), issuer: issuer}, nil
}

func (k *HS256) Issuer() string { return k.issuer }

// Sign encodes claims as a compact JWS.
func (k *HS256) Sign(claims SessionClaims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer and subject of token. Time
// based claims are left to the caller, which owns the clock.
func (k *HS256) Verify(token string) (SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims SessionClaims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return k.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return SessionClaims{}, ErrInvalidSig
	default:
		return SessionClaims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if k.issuer != "" && claims.Issuer != k.issuer {
		return SessionClaims{}, ErrIssuer
	}
	if claims.Subject == "" {
		return SessionClaims{}, fmt.Errorf("%w: missing subject", ErrInvalidClaim)
	}
	return claims, nil
}

// Peek decodes token without checking its signature. Only use the result to
// decide how to report a failure, never to grant access.
func Peek(token string) (SessionClaims, error) {
	var claims SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return claims, nil
}
