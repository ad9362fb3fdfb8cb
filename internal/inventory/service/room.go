package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/idx"
	"github.com/homeledger/inventory/pkg/slogx"
)

var (
	ErrRoomNotFound  = errors.New("room_not_found")
	ErrRoomNotEmpty  = errors.New("room_not_empty")
	ErrNotHomeMember = errors.New("not_home_member")
)

type RoomService struct {
	Store  store.Store
	Access *AccessService
}

// CreateRoom adds a room to homeID with userID as its admin.
func (s *RoomService) CreateRoom(ctx context.Context, homeID, userID, name string) (domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Room{}, ErrInvalidRequest
	}

	now := time.Now().UTC()
	rm := domain.Room{
		ID:        idx.NewAt(now).String(),
		HomeID:    homeID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Rooms().CreateRoom(ctx, rm); err != nil {
			return err
		}
		return tx.RoomMembers().AddMembership(ctx, domain.Membership{
			UserID:     userID,
			ResourceID: rm.ID,
			Admin:      true,
			CreatedAt:  now,
		})
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Room{}, ErrHomeNotFound
	case err != nil:
		slogx.FromContext(ctx).Error("failed to create room", slog.Any("error", err))
		return domain.Room{}, err
	}
	return rm, nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID string) (domain.Room, error) {
	rm, err := s.Store.Rooms().GetRoom(ctx, roomID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// ListRooms returns the rooms of homeID that userID may see: every room for
// home admins, otherwise the rooms userID is a member of.
func (s *RoomService) ListRooms(ctx context.Context, homeID, userID string) ([]domain.Room, error) {
	rooms, err := s.Store.Rooms().ListRoomsInHome(ctx, homeID)
	if err != nil {
		return nil, err
	}

	admin, err := s.Access.IsAdmin(ctx, HomeResource, homeID, userID)
	if err != nil {
		return nil, err
	}
	if admin {
		return rooms, nil
	}

	visible := rooms[:0]
	for _, rm := range rooms {
		ok, err := s.Access.IsMember(ctx, RoomResource, rm.ID, userID)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, rm)
		}
	}
	return visible, nil
}

func (s *RoomService) RenameRoom(ctx context.Context, roomID, name string) (domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Room{}, ErrInvalidRequest
	}
	if err := s.Store.Rooms().RenameRoom(ctx, roomID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Room{}, ErrRoomNotFound
		}
		return domain.Room{}, err
	}
	return s.GetRoom(ctx, roomID)
}

// DeleteRoom refuses to remove a room that still holds items.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Rooms().CountItemsInRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrRoomNotEmpty
		}

		err = tx.Rooms().DeleteRoom(ctx, roomID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	})
}

func (s *RoomService) ListMembers(ctx context.Context, roomID string) ([]domain.Member, error) {
	return s.Store.RoomMembers().ListMembers(ctx, roomID)
}

// AddMember grants userID regular access to the room. Only members of the
// room's home can be added.
func (s *RoomService) AddMember(ctx context.Context, roomID, userID string) error {
	rm, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	inHome, err := s.Access.IsMember(ctx, HomeResource, rm.HomeID, userID)
	if err != nil {
		return err
	}
	if !inHome {
		return ErrNotHomeMember
	}

	err = s.Store.RoomMembers().AddMembership(ctx, domain.Membership{UserID: userID, ResourceID: roomID})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyMember
	case errors.Is(err, store.ErrNotFound):
		return ErrRoomNotFound
	}
	return err
}

func (s *RoomService) RemoveMember(ctx context.Context, roomID, userID string) error {
	return removeMember(ctx, s.Store, RoomResource, roomID, userID)
}

// Permissions reports whether userID administers the room. Non-members get
// ErrMemberNotFound.
func (s *RoomService) Permissions(ctx context.Context, roomID, userID string) (admin bool, err error) {
	m, err := s.Store.RoomMembers().GetMembership(ctx, roomID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, ErrMemberNotFound
	}
	return m.Admin, err
}
