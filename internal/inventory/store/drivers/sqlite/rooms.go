package sqlite

import (
	"context"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

type roomsRepo struct {
	db dbtx
}

const roomColumns = `id, home_id, name, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (domain.Room, error) {
	var (
		rm               domain.Room
		created, updated int64
	)
	if err := row.Scan(&rm.ID, &rm.HomeID, &rm.Name, &created, &updated); err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	rm.CreatedAt = fromMillis(created)
	rm.UpdatedAt = fromMillis(updated)
	return rm, nil
}

func (r *roomsRepo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
}

func (r *roomsRepo) CreateRoom(ctx context.Context, rm domain.Room) error {
	created := nowOr(rm.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (`+roomColumns+`) VALUES (?, ?, ?, ?, ?)`,
		rm.ID, rm.HomeID, rm.Name, toMillis(created), toMillis(created))
	return mapWriteErr(err)
}

func (r *roomsRepo) RenameRoom(ctx context.Context, id, name string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE rooms SET name = ?, updated_at = ? WHERE id = ?`,
		name, toMillis(time.Now()), id))
}

func (r *roomsRepo) DeleteRoom(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id))
}

func (r *roomsRepo) ListRoomsInHome(ctx context.Context, homeID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE home_id = ? ORDER BY name, id`, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *roomsRepo) CountItemsInRoom(ctx context.Context, roomID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM item_rooms WHERE room_id = ?`, roomID).Scan(&n)
	return n, err
}
