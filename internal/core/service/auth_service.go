package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user. The role defaults to "user" when empty and
// anything outside the closed enum is rejected. Names are globally unique;
// a taken name yields domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Insert(ctx, user)
}

// Login verifies the password against the stored bcrypt digest and issues
// a session token for the user. An unknown name and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	if name == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	// bcrypt compares in constant time; a malformed stored digest is a
	// verification failure, not a fault.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Name)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
