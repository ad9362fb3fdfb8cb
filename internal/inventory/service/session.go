package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/pkg/jwtx"
)

const (
	DefaultSessionTTL       = 7 * 24 * time.Hour
	DefaultRefreshThreshold = 3 * 24 * time.Hour
)

var (
	ErrTokenMalformed = errors.New("token_malformed")
	ErrTokenExpired   = errors.New("token_expired")
)

type SessionOptions struct {
	// Key signs and verifies tokens. When nil, one is built from Secret
	// and Issuer.
	Key    *jwtx.HS256
	Secret []byte
	Issuer string

	TTL              time.Duration
	RefreshThreshold time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// SessionService issues stateless session tokens and slides them forward as
// they approach expiry.
type SessionService struct {
	key       *jwtx.HS256
	ttl       time.Duration
	threshold time.Duration
	now       func() time.Time
}

func NewSessionService(opts SessionOptions) (*SessionService, error) {
	key := opts.Key
	if key == nil {
		var err error
		key, err = jwtx.NewHS256(opts.Secret, opts.Issuer)
		if err != nil {
			return nil, err
		}
	}

	s := &SessionService{
		key:       key,
		ttl:       opts.TTL,
		threshold: opts.RefreshThreshold,
		now:       opts.Now,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultSessionTTL
	}
	if s.threshold <= 0 {
		s.threshold = DefaultRefreshThreshold
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

// Issue signs a token for subject valid for the full TTL.
func (s *SessionService) Issue(subject string) (domain.SessionToken, error) {
	if subject == "" {
		return domain.SessionToken{}, fmt.Errorf("%w: empty subject", jwtx.ErrInvalidClaim)
	}

	// exp and iat are whole seconds on the wire.
	now := s.now().UTC().Truncate(time.Second)
	claims := jwtx.NewSessionClaims(subject, s.key.Issuer(), now, s.ttl)

	value, err := s.key.Sign(claims)
	if err != nil {
		return domain.SessionToken{}, err
	}
	return domain.SessionToken{
		Value:     value,
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: claims.Expiry(),
	}, nil
}

// Verify returns the session carried by raw. Expiry is read from the decoded
// claims before the signature is checked, so an expired token always reports
// ErrTokenExpired. A token without exp is malformed.
func (s *SessionService) Verify(raw string) (domain.Session, error) {
	peeked, err := jwtx.Peek(raw)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if peeked.ExpiresAt == nil {
		return domain.Session{}, fmt.Errorf("%w: missing exp", ErrTokenMalformed)
	}
	if peeked.ExpiredAt(s.now()) {
		return domain.Session{}, ErrTokenExpired
	}

	claims, err := s.key.Verify(raw)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	return domain.Session{Subject: claims.Subject, ExpiresAt: claims.Expiry()}, nil
}

// Refresh is the outcome of MaybeRefresh. Token is only set when Refreshed.
type Refresh struct {
	Refreshed bool
	Token     domain.SessionToken
}

// MaybeRefresh issues a replacement token once the remaining lifetime of a
// session drops to the refresh threshold or below.
func (s *SessionService) MaybeRefresh(subject string, expiresAt time.Time) (Refresh, error) {
	if expiresAt.Sub(s.now()) > s.threshold {
		return Refresh{}, nil
	}
	tok, err := s.Issue(subject)
	if err != nil {
		return Refresh{}, err
	}
	return Refresh{Refreshed: true, Token: tok}, nil
}
