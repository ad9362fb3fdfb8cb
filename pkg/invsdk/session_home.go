package invsdk

import (
	"context"
	"net/http"
	"net/url"
)

func homePath(homeID string, rest ...string) string {
	p := "/v1/homes/" + url.PathEscape(homeID)
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

func (s *Session) CreateHome(ctx context.Context, req CreateHomeRequest) (*HomeResponse, error) {
	var out HomeResponse
	if err := s.call(ctx, http.MethodPost, "/v1/homes", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListHomes(ctx context.Context) ([]HomeResponse, error) {
	var out []HomeResponse
	if err := s.call(ctx, http.MethodGet, "/v1/homes", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetHome(ctx context.Context, homeID string) (*HomeResponse, error) {
	var out HomeResponse
	if err := s.call(ctx, http.MethodGet, homePath(homeID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateHome(ctx context.Context, homeID string, req UpdateHomeRequest) (*HomeResponse, error) {
	var out HomeResponse
	if err := s.call(ctx, http.MethodPatch, homePath(homeID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteHome(ctx context.Context, homeID string) error {
	return s.call(ctx, http.MethodDelete, homePath(homeID), nil, nil, http.StatusNoContent)
}

func (s *Session) ListHomeMembers(ctx context.Context, homeID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.call(ctx, http.MethodGet, homePath(homeID, "members"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) RemoveHomeMember(ctx context.Context, homeID, userID string) error {
	return s.call(ctx, http.MethodDelete, homePath(homeID, "members", userID), nil, nil, http.StatusNoContent)
}

// CreateInvite mints an invite code for homeID. Requires home admin.
func (s *Session) CreateInvite(ctx context.Context, homeID string, req CreateInviteRequest) (*InviteResponse, error) {
	var out InviteResponse
	if err := s.call(ctx, http.MethodPost, homePath(homeID, "invites"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListInvites(ctx context.Context, homeID string) ([]InviteResponse, error) {
	var out []InviteResponse
	if err := s.call(ctx, http.MethodGet, homePath(homeID, "invites"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) DeleteInvite(ctx context.Context, homeID, inviteID string) error {
	return s.call(ctx, http.MethodDelete, homePath(homeID, "invites", inviteID), nil, nil, http.StatusNoContent)
}

// AcceptInvite joins the home behind code and returns it.
func (s *Session) AcceptInvite(ctx context.Context, code string) (*HomeResponse, error) {
	var out HomeResponse
	err := s.call(ctx, http.MethodPost, "/v1/invites/accept", AcceptInviteRequest{Code: code}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
