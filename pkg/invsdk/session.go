package invsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated client. It follows token renewals made by the
// server.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      UserResponse
}

// Token returns the current session token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is the expiry of the current token when known.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User is the account the session was opened for. It is empty for sessions
// built with NewSessionFromToken.
func (s *Session) User() UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) adoptRefreshedToken(resp *http.Response) {
	if resp.Header.Get(RefreshedHeader) != "true" {
		return
	}
	for _, c := range resp.Cookies() {
		if c.Name != SessionCookie || c.Value == "" {
			continue
		}
		s.mu.Lock()
		s.token = c.Value
		if c.MaxAge > 0 {
			s.expiresAt = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		s.mu.Unlock()
		return
	}
}

// Logout clears the session cookie on the server side. Tokens are stateless,
// so the token itself stays valid until it expires.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// call runs an authenticated request and decodes a JSON answer into out, or
// expects 204 when out is nil.
func (s *Session) call(ctx context.Context, method, path string, body, out any, status int) error {
	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, out, status)
}
