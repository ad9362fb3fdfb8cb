package invsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const (
	// SessionCookie is the cookie holding the session token.
	SessionCookie = "token"

	// RefreshedHeader is set to "true" on responses that carry a renewed
	// session token.
	RefreshedHeader = "X-Token-Refreshed"
)

// Client talks to the public endpoints and opens Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return c.authenticate(ctx, "/v1/auth/register", req, http.StatusCreated)
}

// Login opens a session with an email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	return c.authenticate(ctx, "/v1/auth/login", req, http.StatusOK)
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) authenticate(ctx context.Context, path string, body any, status int) (*Session, error) {
	payload, err := jsonBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, payload, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, status); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     auth.Token,
		expiresAt: auth.ExpiresAt,
		user:      auth.User,
	}, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
