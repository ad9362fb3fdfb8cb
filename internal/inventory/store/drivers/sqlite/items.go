package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/homeledger/inventory/internal/inventory/domain"
)

type itemsRepo struct {
	db dbtx
}

const itemColumns = `i.id, i.home_id, i.name, i.description, i.purchase_date, i.price_cents,
	i.warranty_until, i.public, i.created_at, i.updated_at,
	(SELECT group_concat(ir.room_id, ',') FROM item_rooms ir WHERE ir.item_id = i.id)`

func scanItem(row interface{ Scan(...any) error }) (domain.Item, error) {
	var (
		it                        domain.Item
		purchase, price, warranty sql.NullInt64
		created, updated          int64
		rooms                     sql.NullString
	)
	err := row.Scan(&it.ID, &it.HomeID, &it.Name, &it.Description, &purchase, &price,
		&warranty, &it.Public, &created, &updated, &rooms)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}

	it.PurchaseDate = mapNullTimePtr(purchase)
	it.PriceCents = mapNullIntPtr(price)
	it.WarrantyUntil = mapNullTimePtr(warranty)
	it.CreatedAt = fromMillis(created)
	it.UpdatedAt = fromMillis(updated)
	if rooms.Valid && rooms.String != "" {
		it.RoomIDs = strings.Split(rooms.String, ",")
	}
	return it, nil
}

func (r *itemsRepo) GetItem(ctx context.Context, id string) (domain.Item, error) {
	return scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items i WHERE i.id = ?`, id))
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) error {
	created := nowOr(it.CreatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, home_id, name, description, purchase_date, price_cents,
			warranty_until, public, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.HomeID, it.Name, it.Description,
		mapOptionalTime(it.PurchaseDate), mapOptionalInt(it.PriceCents), mapOptionalTime(it.WarrantyUntil),
		it.Public, toMillis(created), toMillis(created))
	if err != nil {
		return mapWriteErr(err)
	}
	return r.placeItem(ctx, it.ID, it.RoomIDs)
}

func (r *itemsRepo) UpdateItem(ctx context.Context, it domain.Item) error {
	err := requireAffected(r.db.ExecContext(ctx, `
		UPDATE items
		SET name = ?, description = ?, purchase_date = ?, price_cents = ?,
			warranty_until = ?, public = ?, updated_at = ?
		WHERE id = ?`,
		it.Name, it.Description,
		mapOptionalTime(it.PurchaseDate), mapOptionalInt(it.PriceCents), mapOptionalTime(it.WarrantyUntil),
		it.Public, toMillis(time.Now()), it.ID))
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM item_rooms WHERE item_id = ?`, it.ID); err != nil {
		return err
	}
	return r.placeItem(ctx, it.ID, it.RoomIDs)
}

func (r *itemsRepo) placeItem(ctx context.Context, itemID string, roomIDs []string) error {
	for _, roomID := range roomIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO item_rooms (item_id, room_id) VALUES (?, ?)`, itemID, roomID)
		if err != nil {
			return mapWriteErr(err)
		}
	}
	return nil
}

func (r *itemsRepo) DeleteItem(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id))
}

func (r *itemsRepo) ListItemsForUser(ctx context.Context, userID string) ([]domain.Item, error) {
	return r.list(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		JOIN user_items m ON m.item_id = i.id
		WHERE m.user_id = ?
		ORDER BY i.created_at, i.id`, userID)
}

func (r *itemsRepo) ListVisibleItemsInHome(ctx context.Context, homeID, userID string) ([]domain.Item, error) {
	return r.list(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.home_id = ?
		  AND (i.public = 1 OR EXISTS (
		      SELECT 1 FROM user_items m WHERE m.item_id = i.id AND m.user_id = ?))
		ORDER BY i.created_at, i.id`, homeID, userID)
}

func (r *itemsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
