package service

import (
	"context"
	"testing"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateHomeMakesCreatorAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin, err := f.access.IsAdmin(ctx, HomeResource, f.home.ID, f.admin.ID)
	require.NoError(t, err)
	require.True(t, admin)

	svc := &HomeService{Store: f.store}
	list, err := svc.ListHomes(ctx, f.admin.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "1 Example St", list[0].Address)

	_, err = svc.CreateHome(ctx, f.admin.ID, "  ", "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestUpdateAndDeleteHome(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &HomeService{Store: f.store}

	name := "Renamed"
	h, err := svc.UpdateHome(ctx, f.home.ID, HomeUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", h.Name)
	require.Equal(t, "1 Example St", h.Address)

	require.NoError(t, svc.DeleteHome(ctx, f.home.ID))
	_, err = svc.GetHome(ctx, f.home.ID)
	require.ErrorIs(t, err, ErrHomeNotFound)
	require.ErrorIs(t, svc.DeleteHome(ctx, f.home.ID), ErrHomeNotFound)
}

func TestRemoveHomeMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &HomeService{Store: f.store}

	guest := createUser(t, f.store, "guest@example.com")
	require.NoError(t, f.store.HomeMembers().AddMembership(ctx, domain.Membership{UserID: guest.ID, ResourceID: f.home.ID}))

	require.ErrorIs(t, svc.RemoveMember(ctx, f.home.ID, f.admin.ID), ErrLastAdmin)

	members, err := svc.ListMembers(ctx, f.home.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	require.NoError(t, svc.RemoveMember(ctx, f.home.ID, guest.ID))
	require.ErrorIs(t, svc.RemoveMember(ctx, f.home.ID, guest.ID), ErrMemberNotFound)

	// a lone admin may leave
	require.NoError(t, svc.RemoveMember(ctx, f.home.ID, f.admin.ID))
}
