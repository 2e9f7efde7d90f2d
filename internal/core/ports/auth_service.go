package ports

import (
	"context"

	"github.com/myjournal/journal-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// Login returns the signed session token alongside the user on success.
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
}
