package invsdk

import (
	"context"
	"net/http"
	"net/url"
)

func roomPath(roomID string, rest ...string) string {
	p := "/v1/rooms/" + url.PathEscape(roomID)
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

func (s *Session) CreateRoom(ctx context.Context, homeID, name string) (*RoomResponse, error) {
	var out RoomResponse
	err := s.call(ctx, http.MethodPost, homePath(homeID, "rooms"), RoomRequest{Name: name}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListRooms(ctx context.Context, homeID string) ([]RoomResponse, error) {
	var out []RoomResponse
	if err := s.call(ctx, http.MethodGet, homePath(homeID, "rooms"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetRoom(ctx context.Context, roomID string) (*RoomResponse, error) {
	var out RoomResponse
	if err := s.call(ctx, http.MethodGet, roomPath(roomID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RenameRoom(ctx context.Context, roomID, name string) (*RoomResponse, error) {
	var out RoomResponse
	if err := s.call(ctx, http.MethodPatch, roomPath(roomID), RoomRequest{Name: name}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteRoom(ctx context.Context, roomID string) error {
	return s.call(ctx, http.MethodDelete, roomPath(roomID), nil, nil, http.StatusNoContent)
}

func (s *Session) ListRoomMembers(ctx context.Context, roomID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.call(ctx, http.MethodGet, roomPath(roomID, "members"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AddRoomMember(ctx context.Context, roomID, userID string) error {
	return s.call(ctx, http.MethodPost, roomPath(roomID, "members"),
		AddRoomMemberRequest{UserID: userID}, nil, http.StatusNoContent)
}

func (s *Session) RemoveRoomMember(ctx context.Context, roomID, userID string) error {
	return s.call(ctx, http.MethodDelete, roomPath(roomID, "members", userID), nil, nil, http.StatusNoContent)
}

// RoomPermissions reports whether the caller administers the room.
func (s *Session) RoomPermissions(ctx context.Context, roomID string) (*PermissionsResponse, error) {
	var out PermissionsResponse
	if err := s.call(ctx, http.MethodGet, roomPath(roomID, "permissions"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
