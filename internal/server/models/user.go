package models

import "time"

// User is a registered account. SessionToken is the opaque credential bound
// to the user at registration; it is empty until first issuance.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	SessionToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
