package domain

import "time"

// Membership links a user to one home, room or item. Admin members may
// manage the resource and its memberships.
type Membership struct {
	UserID     string
	ResourceID string
	Admin      bool
	CreatedAt  time.Time
}

// Member is a membership joined with the user it belongs to.
type Member struct {
	UserID   string
	Email    string
	Name     string
	Admin    bool
	JoinedAt time.Time
}
