package domain

import "time"

// HomeInvite grants membership of a home to whoever presents Code.
type HomeInvite struct {
	ID        string
	Code      string // XXXX-XXXX, unique
	HomeID    string
	CreatedBy string
	CreatedAt time.Time

	// ExpiresAt is nil for invites that never expire.
	ExpiresAt *time.Time

	// Reusable invites stay redeemable after their first use.
	Reusable bool

	// UsedBy and UsedAt record the first redemption.
	UsedBy string
	UsedAt *time.Time
}

// ExpiredAt reports whether the invite can no longer be redeemed at now.
func (i HomeInvite) ExpiredAt(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// Consumed reports whether a single-use invite has been redeemed.
func (i HomeInvite) Consumed() bool {
	return !i.Reusable && i.UsedAt != nil
}
