package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/idx"
)

var (
	ErrInvalidInviteRequest    = errors.New("invalid_invite_request")
	ErrInvalidCodeFormat       = errors.New("invalid_code_format")
	ErrInviteNotFound          = errors.New("invite_not_found")
	ErrInviteExpired           = errors.New("invite_expired")
	ErrInviteAlreadyUsed       = errors.New("invite_already_used")
	ErrAlreadyMember           = errors.New("already_member")
	ErrCodeGenerationExhausted = errors.New("code_generation_exhausted")
)

type InviteOptions struct {
	// TTL > 0 expires the invite after TTL. Zero uses the service default,
	// which may itself be zero for invites that never expire.
	TTL time.Duration

	// Reusable invites can be redeemed by any number of users until they
	// expire or are deleted.
	Reusable bool
}

// InviteService mints and redeems home invite codes. Callers enforce that
// the issuer is a home admin.
type InviteService struct {
	Store  store.Store
	Access *AccessService

	// DefaultTTL applies when InviteOptions.TTL is zero.
	DefaultTTL time.Duration

	// Codes and Now default to GenerateInviteCode and time.Now.
	Codes func() (string, error)
	Now   func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InviteService) code() (string, error) {
	if s.Codes != nil {
		return s.Codes()
	}
	return GenerateInviteCode()
}

// CreateInvite stores a new invite for homeID with a code no other invite
// holds. A code that is already taken, found either by lookup or by the
// unique index on insert, is retried up to MaxCodeAttempts times.
func (s *InviteService) CreateInvite(ctx context.Context, homeID, issuerID string, opts InviteOptions) (domain.HomeInvite, error) {
	if homeID == "" || issuerID == "" || opts.TTL < 0 {
		return domain.HomeInvite{}, ErrInvalidInviteRequest
	}

	now := s.now()
	inv := domain.HomeInvite{
		HomeID:    homeID,
		CreatedBy: issuerID,
		CreatedAt: now,
		Reusable:  opts.Reusable,
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = s.DefaultTTL
	}
	if ttl > 0 {
		exp := now.Add(ttl)
		inv.ExpiresAt = &exp
	}

	for range MaxCodeAttempts {
		code, err := s.code()
		if err != nil {
			return domain.HomeInvite{}, err
		}

		_, err = s.Store.Invites().GetInviteByCode(ctx, code)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, store.ErrNotFound):
			return domain.HomeInvite{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}

		inv.ID = idx.NewAt(now).String()
		inv.Code = code
		err = s.Store.Invites().CreateInvite(ctx, inv)
		switch {
		case err == nil:
			return inv, nil
		case errors.Is(err, store.ErrAlreadyExists):
			continue
		case errors.Is(err, store.ErrNotFound):
			return domain.HomeInvite{}, ErrHomeNotFound
		default:
			return domain.HomeInvite{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}
	return domain.HomeInvite{}, ErrCodeGenerationExhausted
}

// Redeem adds redeemerID to the invite's home as a regular member and
// returns the home. Single-use invites are consumed by the first successful
// redemption. The invite row itself is kept.
func (s *InviteService) Redeem(ctx context.Context, code, redeemerID string) (domain.Home, error) {
	code = NormalizeInviteCode(code)
	if !ValidInviteCode(code) {
		return domain.Home{}, ErrInvalidCodeFormat
	}

	inv, err := s.Store.Invites().GetInviteByCode(ctx, code)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Home{}, ErrInviteNotFound
	case err != nil:
		return domain.Home{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	now := s.now()
	if inv.ExpiredAt(now) {
		return domain.Home{}, ErrInviteExpired
	}
	if inv.Consumed() {
		return domain.Home{}, ErrInviteAlreadyUsed
	}

	member, err := s.Access.IsMember(ctx, HomeResource, inv.HomeID, redeemerID)
	if err != nil {
		return domain.Home{}, err
	}
	if member {
		return domain.Home{}, ErrAlreadyMember
	}

	var home domain.Home
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.HomeMembers().AddMembership(ctx, domain.Membership{
			UserID:     redeemerID,
			ResourceID: inv.HomeID,
			CreatedAt:  now,
		})
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrAlreadyMember
		case errors.Is(err, store.ErrNotFound):
			return ErrInviteNotFound
		case err != nil:
			return err
		}

		err = tx.Invites().MarkInviteUsed(ctx, inv.ID, redeemerID, now)
		if errors.Is(err, store.ErrNotFound) {
			if !inv.Reusable {
				return ErrInviteAlreadyUsed
			}
			err = nil // later redemptions of a reusable invite
		}
		if err != nil {
			return err
		}

		home, err = tx.Homes().GetHome(ctx, inv.HomeID)
		return err
	})
	switch {
	case err == nil:
		return home, nil
	case errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrInviteAlreadyUsed),
		errors.Is(err, ErrInviteNotFound):
		return domain.Home{}, err
	case errors.Is(err, store.ErrNotFound):
		return domain.Home{}, ErrInviteNotFound
	default:
		return domain.Home{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

// DeleteInvite removes an invite of homeID. Invites of other homes are
// reported as not found.
func (s *InviteService) DeleteInvite(ctx context.Context, homeID, inviteID string) error {
	inv, err := s.Store.Invites().GetInvite(ctx, inviteID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrInviteNotFound
	case err != nil:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if inv.HomeID != homeID {
		return ErrInviteNotFound
	}

	err = s.Store.Invites().DeleteInvite(ctx, inviteID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrInviteNotFound
	case err != nil:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// ListInvites returns the invites of homeID, newest first.
func (s *InviteService) ListInvites(ctx context.Context, homeID string) ([]domain.HomeInvite, error) {
	invs, err := s.Store.Invites().ListInvitesForHome(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return invs, nil
}
