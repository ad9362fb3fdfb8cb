package store

import (
	"context"
	"errors"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Sub-repositories are reached
// through methods so that a Tx hands out repositories bound to the
// transaction and callers cannot mix the two by accident.
type Store interface {
	Users() Users
	Homes() Homes
	Rooms() Rooms
	Items() Items
	Invites() Invites

	// Membership tables, one per resource kind.
	HomeMembers() Memberships
	RoomMembers() Memberships
	ItemMembers() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a Store bound to one transaction.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateName(ctx context.Context, userID, name string) error

	// UpdateEmail returns ErrAlreadyExists when the email is taken.
	UpdateEmail(ctx context.Context, userID, email string) error

	UpdatePasswordHash(ctx context.Context, userID, hash string) error

	// DeleteUser cascades to every membership of the user.
	DeleteUser(ctx context.Context, userID string) error
}

type Homes interface {
	GetHome(ctx context.Context, id string) (domain.Home, error)
	CreateHome(ctx context.Context, h domain.Home) error

	// UpdateHome rewrites name and address.
	UpdateHome(ctx context.Context, h domain.Home) error

	// DeleteHome cascades to rooms, items, invites and memberships.
	DeleteHome(ctx context.Context, id string) error

	// ListHomesForUser returns the homes userID is a member of, oldest first.
	ListHomesForUser(ctx context.Context, userID string) ([]domain.Home, error)
}

type Rooms interface {
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	CreateRoom(ctx context.Context, r domain.Room) error
	RenameRoom(ctx context.Context, id, name string) error
	DeleteRoom(ctx context.Context, id string) error

	// ListRoomsInHome returns every room of the home ordered by name.
	ListRoomsInHome(ctx context.Context, homeID string) ([]domain.Room, error)

	// CountItemsInRoom counts items placed in the room.
	CountItemsInRoom(ctx context.Context, roomID string) (int, error)
}

type Items interface {
	// GetItem returns the item with its room placements.
	GetItem(ctx context.Context, id string) (domain.Item, error)

	// CreateItem inserts the item and its room placements.
	CreateItem(ctx context.Context, it domain.Item) error

	// UpdateItem rewrites the mutable fields and replaces room placements.
	UpdateItem(ctx context.Context, it domain.Item) error

	DeleteItem(ctx context.Context, id string) error

	// ListItemsForUser returns items userID is a member of.
	ListItemsForUser(ctx context.Context, userID string) ([]domain.Item, error)

	// ListVisibleItemsInHome returns the home's items that userID is a
	// member of or that are public.
	ListVisibleItemsInHome(ctx context.Context, homeID, userID string) ([]domain.Item, error)
}

type Invites interface {
	// CreateInvite returns ErrAlreadyExists when the code is taken.
	CreateInvite(ctx context.Context, inv domain.HomeInvite) error

	GetInvite(ctx context.Context, id string) (domain.HomeInvite, error)
	GetInviteByCode(ctx context.Context, code string) (domain.HomeInvite, error)

	// ListInvitesForHome returns newest first.
	ListInvitesForHome(ctx context.Context, homeID string) ([]domain.HomeInvite, error)

	// MarkInviteUsed records the first redemption. It returns ErrNotFound
	// when the invite is gone or already carries a redemption.
	MarkInviteUsed(ctx context.Context, id, userID string, at time.Time) error

	DeleteInvite(ctx context.Context, id string) error

	// DeleteStaleInvites removes invites that expired before cutoff and
	// single-use invites redeemed before cutoff. It returns the number
	// removed.
	DeleteStaleInvites(ctx context.Context, cutoff time.Time) (int64, error)
}

// Memberships is one user-to-resource join table.
type Memberships interface {
	GetMembership(ctx context.Context, resourceID, userID string) (domain.Membership, error)

	// AddMembership returns ErrAlreadyExists for a duplicate pair and
	// ErrNotFound when the user or resource does not exist.
	AddMembership(ctx context.Context, m domain.Membership) error

	// RemoveMembership returns ErrNotFound when there is no such pair.
	RemoveMembership(ctx context.Context, resourceID, userID string) error

	// ListMembers returns the members of a resource, admins first.
	ListMembers(ctx context.Context, resourceID string) ([]domain.Member, error)

	CountAdmins(ctx context.Context, resourceID string) (int, error)
}
