package sqlite

import (
	"context"
	"database/sql"

	"github.com/homeledger/inventory/internal/inventory/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owning Store keeps the database open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users             { return &usersRepo{db: t.tx} }
func (t *txStore) Homes() store.Homes             { return &homesRepo{db: t.tx} }
func (t *txStore) Rooms() store.Rooms             { return &roomsRepo{db: t.tx} }
func (t *txStore) Items() store.Items             { return &itemsRepo{db: t.tx} }
func (t *txStore) Invites() store.Invites         { return &invitesRepo{db: t.tx} }
func (t *txStore) HomeMembers() store.Memberships { return newMemberships(t.tx, homeMembers) }
func (t *txStore) RoomMembers() store.Memberships { return newMemberships(t.tx, roomMembers) }
func (t *txStore) ItemMembers() store.Memberships { return newMemberships(t.tx, itemMembers) }
