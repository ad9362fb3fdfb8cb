package domain

import "time"

type User struct {
	ID           string
	Email        string // stored lower-cased
	Name         string
	PasswordHash string // argon2id PHC string, or bcrypt for legacy accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
