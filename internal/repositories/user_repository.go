package repositories

import (
	"context"

	"bookswap/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetOrCreateByEmail(ctx context.Context, email string, newUser func() models.User) (*models.User, bool, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// SessionRepository holds the single "who is logged in" slot.
type SessionRepository interface {
	Current(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}
