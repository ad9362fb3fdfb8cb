package invsdk

import (
	"context"
	"net/http"
	"net/url"
)

func itemPath(itemID string) string {
	return "/v1/items/" + url.PathEscape(itemID)
}

// ListMyItems returns the items the caller is a member of.
func (s *Session) ListMyItems(ctx context.Context) ([]ItemResponse, error) {
	var out []ItemResponse
	if err := s.call(ctx, http.MethodGet, "/v1/items", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHomeItems returns the items of a home visible to the caller.
func (s *Session) ListHomeItems(ctx context.Context, homeID string) ([]ItemResponse, error) {
	var out []ItemResponse
	if err := s.call(ctx, http.MethodGet, homePath(homeID, "items"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateItem(ctx context.Context, homeID string, req ItemRequest) (*ItemResponse, error) {
	var out ItemResponse
	if err := s.call(ctx, http.MethodPost, homePath(homeID, "items"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetItem(ctx context.Context, itemID string) (*ItemResponse, error) {
	var out ItemResponse
	if err := s.call(ctx, http.MethodGet, itemPath(itemID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateItem(ctx context.Context, itemID string, req ItemRequest) (*ItemResponse, error) {
	var out ItemResponse
	if err := s.call(ctx, http.MethodPut, itemPath(itemID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteItem(ctx context.Context, itemID string) error {
	return s.call(ctx, http.MethodDelete, itemPath(itemID), nil, nil, http.StatusNoContent)
}
