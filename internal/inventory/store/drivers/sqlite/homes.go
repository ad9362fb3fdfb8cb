package sqlite

import (
	"context"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

type homesRepo struct {
	db dbtx
}

const homeColumns = `h.id, h.name, h.address, h.created_at, h.updated_at`

func scanHome(row interface{ Scan(...any) error }) (domain.Home, error) {
	var (
		h                domain.Home
		created, updated int64
	)
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &created, &updated); err != nil {
		return domain.Home{}, mapNotFound(err)
	}
	h.CreatedAt = fromMillis(created)
	h.UpdatedAt = fromMillis(updated)
	return h, nil
}

func (r *homesRepo) GetHome(ctx context.Context, id string) (domain.Home, error) {
	return scanHome(r.db.QueryRowContext(ctx,
		`SELECT `+homeColumns+` FROM homes h WHERE h.id = ?`, id))
}

func (r *homesRepo) CreateHome(ctx context.Context, h domain.Home) error {
	created := nowOr(h.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO homes (id, name, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Address, toMillis(created), toMillis(created))
	return mapWriteErr(err)
}

func (r *homesRepo) UpdateHome(ctx context.Context, h domain.Home) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE homes SET name = ?, address = ?, updated_at = ? WHERE id = ?`,
		h.Name, h.Address, toMillis(time.Now()), h.ID))
}

func (r *homesRepo) DeleteHome(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM homes WHERE id = ?`, id))
}

func (r *homesRepo) ListHomesForUser(ctx context.Context, userID string) ([]domain.Home, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+homeColumns+`
		FROM homes h
		JOIN user_homes m ON m.home_id = h.id
		WHERE m.user_id = ?
		ORDER BY h.created_at, h.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Home
	for rows.Next() {
		h, err := scanHome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
