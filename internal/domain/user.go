package domain

import "time"

// User is the domain entity for a registered account.
// The password is stored only as a bcrypt hash, never plaintext.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
