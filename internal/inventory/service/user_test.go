package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	u, err := svc.Register(ctx, "  Alice@Example.com ", "Alice", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)

	_, err = svc.Register(ctx, "ALICE@example.com", "Other", "pw")
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(ctx, "bob@example.com", " ", "pw")
	require.ErrorIs(t, err, ErrInvalidRequest)

	got, err := svc.Authenticate(ctx, "alice@EXAMPLE.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUpgradesLegacyHash(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	u := createUser(t, st, "legacy@example.com")
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.Users().UpdatePasswordHash(ctx, u.ID, string(legacy)))

	_, err = svc.Authenticate(ctx, "legacy@example.com", "old-password")
	require.NoError(t, err)

	stored, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Contains(t, stored.PasswordHash, "$argon2id$")

	_, err = svc.Authenticate(ctx, "legacy@example.com", "old-password")
	require.NoError(t, err)
}

func TestProfileChanges(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	u, err := svc.Register(ctx, "carol@example.com", "Carol", "pw-one")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "dave@example.com", "Dave", "pw-two")
	require.NoError(t, err)

	homes := &HomeService{Store: st}
	_, err = homes.CreateHome(ctx, u.ID, "Carol's", "")
	require.NoError(t, err)

	_, list, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	renamed, err := svc.UpdateName(ctx, u.ID, "Caroline")
	require.NoError(t, err)
	require.Equal(t, "Caroline", renamed.Name)

	_, err = svc.UpdateEmail(ctx, u.ID, "DAVE@example.com")
	require.ErrorIs(t, err, ErrEmailTaken)

	moved, err := svc.UpdateEmail(ctx, u.ID, "caroline@example.com")
	require.NoError(t, err)
	require.Equal(t, "caroline@example.com", moved.Email)

	require.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "wrong", "pw-new"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(ctx, u.ID, "pw-one", "pw-new"))
	_, err = svc.Authenticate(ctx, "caroline@example.com", "pw-new")
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteAccount(ctx, u.ID, "pw-one"), ErrInvalidCredentials)
	require.NoError(t, svc.DeleteAccount(ctx, u.ID, "pw-new"))
	_, err = svc.GetUser(ctx, u.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
