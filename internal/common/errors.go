// Package common contains shared constants and sentinel errors used across
// the auth service components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already taken")

	// Service-level errors.
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")

	// Token errors (invalid, malformed, tampered, or expired).
	ErrInvalidToken = errors.New("invalid token")
)
