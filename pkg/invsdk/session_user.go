package invsdk

import (
	"context"
	"net/http"
)

// Me returns the current user and their homes.
func (s *Session) Me(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.call(ctx, http.MethodGet, "/v1/users/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateName(ctx context.Context, name string) (*UserResponse, error) {
	var out UserResponse
	err := s.call(ctx, http.MethodPatch, "/v1/users/me/name", UpdateNameRequest{Name: name}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateEmail(ctx context.Context, email string) (*UserResponse, error) {
	var out UserResponse
	err := s.call(ctx, http.MethodPatch, "/v1/users/me/email", UpdateEmailRequest{Email: email}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	return s.call(ctx, http.MethodPatch, "/v1/users/me/password",
		ChangePasswordRequest{CurrentPassword: current, NewPassword: next}, nil, http.StatusNoContent)
}

// DeleteAccount removes the account after confirming the password.
func (s *Session) DeleteAccount(ctx context.Context, password string) error {
	return s.call(ctx, http.MethodDelete, "/v1/users/me",
		DeleteAccountRequest{Password: password}, nil, http.StatusNoContent)
}
