package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, code, home_id, created_by, created_at, expires_at, reusable, used_by, used_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.HomeInvite, error) {
	var (
		inv             domain.HomeInvite
		created         int64
		expires, usedAt sql.NullInt64
		usedBy          sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.Code, &inv.HomeID, &inv.CreatedBy, &created,
		&expires, &inv.Reusable, &usedBy, &usedAt)
	if err != nil {
		return domain.HomeInvite{}, mapNotFound(err)
	}

	inv.CreatedAt = fromMillis(created)
	inv.ExpiresAt = mapNullTimePtr(expires)
	inv.UsedBy = usedBy.String
	inv.UsedAt = mapNullTimePtr(usedAt)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.HomeInvite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO home_invites (id, code, home_id, created_by, created_at, expires_at, reusable)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, inv.HomeID, inv.CreatedBy, toMillis(nowOr(inv.CreatedAt)),
		mapOptionalTime(inv.ExpiresAt), inv.Reusable)
	return mapWriteErr(err)
}

func (r *invitesRepo) GetInvite(ctx context.Context, id string) (domain.HomeInvite, error) {
	return scanInvite(r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM home_invites WHERE id = ?`, id))
}

func (r *invitesRepo) GetInviteByCode(ctx context.Context, code string) (domain.HomeInvite, error) {
	return scanInvite(r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM home_invites WHERE code = ?`, code))
}

func (r *invitesRepo) ListInvitesForHome(ctx context.Context, homeID string) ([]domain.HomeInvite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM home_invites WHERE home_id = ? ORDER BY created_at DESC, id DESC`,
		homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HomeInvite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, id, userID string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE home_invites SET used_by = ?, used_at = ? WHERE id = ? AND used_at IS NULL`,
		mapStringNull(userID), toMillis(at), id))
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM home_invites WHERE id = ?`, id))
}

func (r *invitesRepo) DeleteStaleInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM home_invites
		WHERE (expires_at IS NOT NULL AND expires_at < ?)
		   OR (reusable = 0 AND used_at IS NOT NULL AND used_at < ?)`,
		toMillis(cutoff), toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
