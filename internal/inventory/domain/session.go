package domain

import "time"

// SessionToken is a signed bearer token together with the facts encoded in
// it.
type SessionToken struct {
	Value     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is what a verified token proves: who the caller is and until when.
type Session struct {
	Subject   string
	ExpiresAt time.Time
}
