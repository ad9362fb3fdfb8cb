package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/idx"
	"github.com/homeledger/inventory/pkg/slogx"
)

var (
	ErrHomeNotFound   = errors.New("home_not_found")
	ErrMemberNotFound = errors.New("member_not_found")
	ErrLastAdmin      = errors.New("last_admin")
)

type HomeService struct {
	Store store.Store
}

// CreateHome stores a home with userID as its first admin.
func (s *HomeService) CreateHome(ctx context.Context, userID, name, address string) (domain.Home, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Home{}, ErrInvalidRequest
	}

	now := time.Now().UTC()
	h := domain.Home{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		Address:   strings.TrimSpace(address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Homes().CreateHome(ctx, h); err != nil {
			return err
		}
		return tx.HomeMembers().AddMembership(ctx, domain.Membership{
			UserID:     userID,
			ResourceID: h.ID,
			Admin:      true,
			CreatedAt:  now,
		})
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create home", slog.Any("error", err))
		return domain.Home{}, err
	}

	slogx.FromContext(ctx).Info("home created",
		slog.String("home_id", h.ID),
		slog.String("user_id", userID),
	)
	return h, nil
}

func (s *HomeService) GetHome(ctx context.Context, homeID string) (domain.Home, error) {
	h, err := s.Store.Homes().GetHome(ctx, homeID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Home{}, ErrHomeNotFound
	}
	return h, err
}

func (s *HomeService) ListHomes(ctx context.Context, userID string) ([]domain.Home, error) {
	return s.Store.Homes().ListHomesForUser(ctx, userID)
}

// HomeUpdate carries the fields to change. Nil fields are kept.
type HomeUpdate struct {
	Name    *string
	Address *string
}

func (s *HomeService) UpdateHome(ctx context.Context, homeID string, upd HomeUpdate) (domain.Home, error) {
	h, err := s.GetHome(ctx, homeID)
	if err != nil {
		return domain.Home{}, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return domain.Home{}, ErrInvalidRequest
		}
		h.Name = name
	}
	if upd.Address != nil {
		h.Address = strings.TrimSpace(*upd.Address)
	}

	if err := s.Store.Homes().UpdateHome(ctx, h); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Home{}, ErrHomeNotFound
		}
		return domain.Home{}, err
	}
	return s.GetHome(ctx, homeID)
}

// DeleteHome removes the home with its rooms, items, invites and
// memberships.
func (s *HomeService) DeleteHome(ctx context.Context, homeID string) error {
	err := s.Store.Homes().DeleteHome(ctx, homeID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrHomeNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("home deleted", slog.String("home_id", homeID))
	}
	return err
}

func (s *HomeService) ListMembers(ctx context.Context, homeID string) ([]domain.Member, error) {
	return s.Store.HomeMembers().ListMembers(ctx, homeID)
}

// RemoveMember drops userID from the home. The last admin cannot be
// removed while other members remain.
func (s *HomeService) RemoveMember(ctx context.Context, homeID, userID string) error {
	return removeMember(ctx, s.Store, HomeResource, homeID, userID)
}

func removeMember(ctx context.Context, st store.Store, res Resource, resourceID, userID string) error {
	return st.WithTx(ctx, func(tx store.Tx) error {
		members := res.members(tx)

		m, err := members.GetMembership(ctx, resourceID, userID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrMemberNotFound
		case err != nil:
			return err
		}

		if m.Admin {
			all, err := members.ListMembers(ctx, resourceID)
			if err != nil {
				return err
			}
			admins, err := members.CountAdmins(ctx, resourceID)
			if err != nil {
				return err
			}
			if admins == 1 && len(all) > 1 {
				return ErrLastAdmin
			}
		}

		if err := members.RemoveMembership(ctx, resourceID, userID); err != nil {
			return fmt.Errorf("remove %s member: %w", res, err)
		}
		return nil
	})
}
