package sqlite

import (
	"context"
	"fmt"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

// membershipTable names one join table and its resource column. Only the
// constants below are ever interpolated into SQL.
type membershipTable struct {
	table  string
	column string
}

var (
	homeMembers = membershipTable{table: "user_homes", column: "home_id"}
	roomMembers = membershipTable{table: "user_rooms", column: "room_id"}
	itemMembers = membershipTable{table: "user_items", column: "item_id"}
)

type membershipsRepo struct {
	db dbtx
	t  membershipTable

	qGet, qAdd, qRemove, qList, qCountAdmins string
}

func newMemberships(db dbtx, t membershipTable) *membershipsRepo {
	return &membershipsRepo{
		db: db,
		t:  t,

		qGet: fmt.Sprintf(
			`SELECT user_id, %[2]s, admin, created_at FROM %[1]s WHERE %[2]s = ? AND user_id = ?`,
			t.table, t.column),
		qAdd: fmt.Sprintf(
			`INSERT INTO %[1]s (user_id, %[2]s, admin, created_at) VALUES (?, ?, ?, ?)`,
			t.table, t.column),
		qRemove: fmt.Sprintf(
			`DELETE FROM %[1]s WHERE %[2]s = ? AND user_id = ?`,
			t.table, t.column),
		qList: fmt.Sprintf(`
			SELECT u.id, u.email, u.name, m.admin, m.created_at
			FROM %[1]s m
			JOIN users u ON u.id = m.user_id
			WHERE m.%[2]s = ?
			ORDER BY m.admin DESC, m.created_at, u.id`,
			t.table, t.column),
		qCountAdmins: fmt.Sprintf(
			`SELECT COUNT(*) FROM %[1]s WHERE %[2]s = ? AND admin = 1`,
			t.table, t.column),
	}
}

func (r *membershipsRepo) GetMembership(ctx context.Context, resourceID, userID string) (domain.Membership, error) {
	var (
		m       domain.Membership
		created int64
	)
	err := r.db.QueryRowContext(ctx, r.qGet, resourceID, userID).
		Scan(&m.UserID, &m.ResourceID, &m.Admin, &created)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.CreatedAt = fromMillis(created)
	return m, nil
}

func (r *membershipsRepo) AddMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, r.qAdd, m.UserID, m.ResourceID, m.Admin, toMillis(nowOr(m.CreatedAt)))
	return mapWriteErr(err)
}

func (r *membershipsRepo) RemoveMembership(ctx context.Context, resourceID, userID string) error {
	return requireAffected(r.db.ExecContext(ctx, r.qRemove, resourceID, userID))
}

func (r *membershipsRepo) ListMembers(ctx context.Context, resourceID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, r.qList, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var (
			m      domain.Member
			joined int64
		)
		if err := rows.Scan(&m.UserID, &m.Email, &m.Name, &m.Admin, &joined); err != nil {
			return nil, err
		}
		m.JoinedAt = fromMillis(joined)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) CountAdmins(ctx context.Context, resourceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, r.qCountAdmins, resourceID).Scan(&n)
	return n, err
}
