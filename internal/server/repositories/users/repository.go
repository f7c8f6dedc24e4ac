// Package users persists user accounts. Email uniqueness is enforced by the
// storage layer: a concurrent insert of the same email surfaces as
// common.ErrEmailTaken, which the service treats like a duplicate.
package users

import (
	"context"

	"github.com/mkorchagin/authsvc/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// A uniqueness violation on email yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns the user with the given email, or
	// common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
