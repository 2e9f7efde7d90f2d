package ports

import (
	"context"

	"github.com/myjournal/journal-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Insert stores a new user; returns domain.ErrUserExists when the name
	// is already taken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByName returns domain.ErrUserNotFound when no such user exists.
	FindByName(ctx context.Context, name string) (*domain.User, error)
}
