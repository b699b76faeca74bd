package domain

import "time"

// User is an account identity. Users are created at registration and
// never mutated or deleted afterwards; profile editing does not exist.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
