package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/homeledger/inventory/internal/inventory/store"
)

var (
	ErrForbidden        = errors.New("forbidden")
	ErrStoreUnavailable = errors.New("store_unavailable")
)

// Resource selects the membership table a check runs against. The set of
// implementations is closed.
type Resource interface {
	members(s store.Store) store.Memberships
	String() string
}

type homeResource struct{}
type roomResource struct{}
type itemResource struct{}

func (homeResource) members(s store.Store) store.Memberships { return s.HomeMembers() }
func (roomResource) members(s store.Store) store.Memberships { return s.RoomMembers() }
func (itemResource) members(s store.Store) store.Memberships { return s.ItemMembers() }

func (homeResource) String() string { return "home" }
func (roomResource) String() string { return "room" }
func (itemResource) String() string { return "item" }

var (
	HomeResource Resource = homeResource{}
	RoomResource Resource = roomResource{}
	ItemResource Resource = itemResource{}
)

type Level int

const (
	LevelMember Level = iota
	LevelAdmin
)

// AccessService answers membership questions. A missing resource and a
// missing membership are both plain denials; store faults are errors.
type AccessService struct {
	Store store.Store
}

func (s *AccessService) IsMember(ctx context.Context, res Resource, resourceID, userID string) (bool, error) {
	_, ok, err := s.lookup(ctx, res, resourceID, userID)
	return ok, err
}

func (s *AccessService) IsAdmin(ctx context.Context, res Resource, resourceID, userID string) (bool, error) {
	admin, ok, err := s.lookup(ctx, res, resourceID, userID)
	return ok && admin, err
}

// Require returns ErrForbidden unless userID holds at least level on the
// resource.
func (s *AccessService) Require(ctx context.Context, res Resource, resourceID, userID string, level Level) error {
	admin, ok, err := s.lookup(ctx, res, resourceID, userID)
	if err != nil {
		return err
	}
	if !ok || (level == LevelAdmin && !admin) {
		return ErrForbidden
	}
	return nil
}

func (s *AccessService) lookup(ctx context.Context, res Resource, resourceID, userID string) (admin, ok bool, err error) {
	if resourceID == "" || userID == "" {
		return false, false, nil
	}

	m, err := res.members(s.Store).GetMembership(ctx, resourceID, userID)
	switch {
	case err == nil:
		return m.Admin, true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, false, nil
	default:
		return false, false, fmt.Errorf("%w: %s membership: %w", ErrStoreUnavailable, res, err)
	}
}
