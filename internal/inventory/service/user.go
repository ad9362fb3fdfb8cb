package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/cryptox"
	"github.com/homeledger/inventory/pkg/idx"
	"github.com/homeledger/inventory/pkg/slogx"
)

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrUserNotFound       = errors.New("user_not_found")
)

type UserService struct {
	Store store.Store
}

// Register creates an account. Emails are compared case-insensitively.
func (s *UserService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return domain.User{}, ErrInvalidRequest
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	err = s.Store.Users().CreateUser(ctx, u)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrEmailTaken
	case err != nil:
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return s.GetUser(ctx, u.ID)
}

// Authenticate checks an email and password pair. Legacy hashes are
// upgraded to the current scheme on success.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrInvalidCredentials
	case err != nil:
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := s.checkPassword(ctx, u, password); err != nil {
		return domain.User{}, err
	}

	if cryptox.NeedsRehash(u.PasswordHash) {
		if hash, err := cryptox.HashPassword(password); err == nil {
			if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
				log.Warn("failed to upgrade password hash", slog.String("user_id", u.ID), slog.Any("error", err))
			} else {
				log.Info("password hash upgraded", slog.String("user_id", u.ID))
			}
		}
	}
	return u, nil
}

func (s *UserService) checkPassword(ctx context.Context, u domain.User, password string) error {
	err := cryptox.VerifyPassword(password, u.PasswordHash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cryptox.ErrPasswordMismatch):
		return ErrInvalidCredentials
	default:
		slogx.FromContext(ctx).Error("failed to verify password",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return ErrInvalidCredentials
	}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Profile returns the user together with the homes they belong to.
func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, []domain.Home, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, nil, err
	}
	homes, err := s.Store.Homes().ListHomesForUser(ctx, userID)
	if err != nil {
		return domain.User{}, nil, err
	}
	return u, homes, nil
}

func (s *UserService) UpdateName(ctx context.Context, userID, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrInvalidRequest
	}
	if err := s.Store.Users().UpdateName(ctx, userID, name); err != nil {
		return domain.User{}, mapUserErr(err)
	}
	return s.GetUser(ctx, userID)
}

func (s *UserService) UpdateEmail(ctx context.Context, userID, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.User{}, ErrInvalidRequest
	}
	if err := s.Store.Users().UpdateEmail(ctx, userID, email); err != nil {
		return domain.User{}, mapUserErr(err)
	}
	return s.GetUser(ctx, userID)
}

// ChangePassword requires the current password.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if next == "" {
		return ErrInvalidRequest
	}

	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.checkPassword(ctx, u, current); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return mapUserErr(err)
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// DeleteAccount removes the user and every membership they hold after
// confirming the password. Homes, rooms and items stay for the remaining
// members.
func (s *UserService) DeleteAccount(ctx context.Context, userID, password string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.checkPassword(ctx, u, password); err != nil {
		return err
	}
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return mapUserErr(err)
	}

	slogx.FromContext(ctx).Info("user deleted", slog.String("user_id", userID))
	return nil
}

func mapUserErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrEmailTaken
	}
	return fmt.Errorf("users: %w", err)
}
