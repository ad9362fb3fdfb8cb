package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/idx"
	"github.com/homeledger/inventory/pkg/slogx"
)

var ErrItemNotFound = errors.New("item_not_found")

// ItemInput is the writable part of an item.
type ItemInput struct {
	Name          string
	Description   string
	PurchaseDate  *time.Time
	PriceCents    *int64
	WarrantyUntil *time.Time
	Public        bool
	RoomIDs       []string
}

type ItemService struct {
	Store  store.Store
	Access *AccessService
}

func (s *ItemService) ListMine(ctx context.Context, userID string) ([]domain.Item, error) {
	return s.Store.Items().ListItemsForUser(ctx, userID)
}

// ListInHome returns the items of homeID that userID is a member of or that
// are public.
func (s *ItemService) ListInHome(ctx context.Context, homeID, userID string) ([]domain.Item, error) {
	return s.Store.Items().ListVisibleItemsInHome(ctx, homeID, userID)
}

// CreateItem stores an item in homeID with userID as its admin. Every room
// must belong to the same home.
func (s *ItemService) CreateItem(ctx context.Context, homeID, userID string, in ItemInput) (domain.Item, error) {
	in, err := s.checkInput(ctx, homeID, in)
	if err != nil {
		return domain.Item{}, err
	}

	now := time.Now().UTC()
	it := domain.Item{
		ID:            idx.NewAt(now).String(),
		HomeID:        homeID,
		Name:          in.Name,
		Description:   in.Description,
		PurchaseDate:  in.PurchaseDate,
		PriceCents:    in.PriceCents,
		WarrantyUntil: in.WarrantyUntil,
		Public:        in.Public,
		RoomIDs:       in.RoomIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Items().CreateItem(ctx, it); err != nil {
			return err
		}
		return tx.ItemMembers().AddMembership(ctx, domain.Membership{
			UserID:     userID,
			ResourceID: it.ID,
			Admin:      true,
			CreatedAt:  now,
		})
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Item{}, ErrHomeNotFound
	case err != nil:
		slogx.FromContext(ctx).Error("failed to create item", slog.Any("error", err))
		return domain.Item{}, err
	}
	return s.loadItem(ctx, it.ID)
}

// GetItem returns the item when userID is a member of it, or when it is
// public and userID belongs to its home.
func (s *ItemService) GetItem(ctx context.Context, itemID, userID string) (domain.Item, error) {
	it, err := s.loadItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}

	member, err := s.Access.IsMember(ctx, ItemResource, itemID, userID)
	if err != nil {
		return domain.Item{}, err
	}
	if member {
		return it, nil
	}

	if it.Public {
		inHome, err := s.Access.IsMember(ctx, HomeResource, it.HomeID, userID)
		if err != nil {
			return domain.Item{}, err
		}
		if inHome {
			return it, nil
		}
	}
	return domain.Item{}, ErrForbidden
}

// UpdateItem replaces the writable fields and room placements.
func (s *ItemService) UpdateItem(ctx context.Context, itemID string, in ItemInput) (domain.Item, error) {
	it, err := s.loadItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	if in, err = s.checkInput(ctx, it.HomeID, in); err != nil {
		return domain.Item{}, err
	}

	it.Name = in.Name
	it.Description = in.Description
	it.PurchaseDate = in.PurchaseDate
	it.PriceCents = in.PriceCents
	it.WarrantyUntil = in.WarrantyUntil
	it.Public = in.Public
	it.RoomIDs = in.RoomIDs

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Items().UpdateItem(ctx, it)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Item{}, ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}
	return s.loadItem(ctx, itemID)
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID string) error {
	err := s.Store.Items().DeleteItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (s *ItemService) loadItem(ctx context.Context, itemID string) (domain.Item, error) {
	it, err := s.Store.Items().GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Item{}, ErrItemNotFound
	}
	return it, err
}

func (s *ItemService) checkInput(ctx context.Context, homeID string, in ItemInput) (ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return in, ErrInvalidRequest
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return in, ErrInvalidRequest
	}

	in.RoomIDs = slices.Clone(in.RoomIDs)
	slices.Sort(in.RoomIDs)
	in.RoomIDs = slices.Compact(in.RoomIDs)
	for _, roomID := range in.RoomIDs {
		rm, err := s.Store.Rooms().GetRoom(ctx, roomID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && rm.HomeID != homeID) {
			return in, ErrRoomNotFound
		}
		if err != nil {
			return in, err
		}
	}
	return in, nil
}
