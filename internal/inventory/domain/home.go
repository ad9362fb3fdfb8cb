package domain

import "time"

type Home struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Room struct {
	ID        string
	HomeID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Item struct {
	ID            string
	HomeID        string
	Name          string
	Description   string
	PurchaseDate  *time.Time
	PriceCents    *int64
	WarrantyUntil *time.Time

	// Public items are readable by every member of the home, not only by
	// users holding an item membership.
	Public bool

	// RoomIDs lists the rooms the item is placed in. Loaded on reads.
	RoomIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
