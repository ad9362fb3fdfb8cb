package service

import (
	"context"
	"testing"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestAccessAdminImpliesMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	member, err := f.access.IsMember(ctx, HomeResource, f.home.ID, f.admin.ID)
	require.NoError(t, err)
	require.True(t, member)

	admin, err := f.access.IsAdmin(ctx, HomeResource, f.home.ID, f.admin.ID)
	require.NoError(t, err)
	require.True(t, admin)

	require.NoError(t, f.access.Require(ctx, HomeResource, f.home.ID, f.admin.ID, LevelAdmin))
}

func TestAccessRegularMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	guest := createUser(t, f.store, "guest@example.com")

	require.NoError(t, f.store.HomeMembers().AddMembership(ctx, domain.Membership{UserID: guest.ID, ResourceID: f.home.ID}))

	member, err := f.access.IsMember(ctx, HomeResource, f.home.ID, guest.ID)
	require.NoError(t, err)
	require.True(t, member)

	admin, err := f.access.IsAdmin(ctx, HomeResource, f.home.ID, guest.ID)
	require.NoError(t, err)
	require.False(t, admin)

	require.NoError(t, f.access.Require(ctx, HomeResource, f.home.ID, guest.ID, LevelMember))
	require.ErrorIs(t, f.access.Require(ctx, HomeResource, f.home.ID, guest.ID, LevelAdmin), ErrForbidden)
}

func TestAccessNoRowsMeansFalse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stranger := createUser(t, f.store, "stranger@example.com")

	cases := []struct {
		name       string
		res        Resource
		resourceID string
		userID     string
	}{
		{"non-member", HomeResource, f.home.ID, stranger.ID},
		{"missing home", HomeResource, idx.New().String(), f.admin.ID},
		{"missing room", RoomResource, idx.New().String(), f.admin.ID},
		{"missing item", ItemResource, idx.New().String(), f.admin.ID},
		{"home id against room table", RoomResource, f.home.ID, f.admin.ID},
		{"empty ids", ItemResource, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			member, err := f.access.IsMember(ctx, tc.res, tc.resourceID, tc.userID)
			require.NoError(t, err)
			require.False(t, member)

			admin, err := f.access.IsAdmin(ctx, tc.res, tc.resourceID, tc.userID)
			require.NoError(t, err)
			require.False(t, admin)

			require.ErrorIs(t, f.access.Require(ctx, tc.res, tc.resourceID, tc.userID, LevelMember), ErrForbidden)
		})
	}
}

func TestAccessStoreFaultIsNotADenial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Close())

	_, err := f.access.IsMember(ctx, HomeResource, f.home.ID, f.admin.ID)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	err = f.access.Require(ctx, HomeResource, f.home.ID, f.admin.ID, LevelMember)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.NotErrorIs(t, err, ErrForbidden)
}
