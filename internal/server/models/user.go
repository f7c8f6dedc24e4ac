// Package models holds server-side domain types.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password and must never leave the service boundary.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Public returns a copy of the user safe to expose to callers: the password
// hash is stripped.
func (u *User) Public() *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
