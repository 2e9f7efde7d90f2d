package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/myjournal/journal-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Name]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Name] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	u, ok := r.users[name]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newAuthService(t *testing.T, repo *stubUserRepo) *AuthService {
	t.Helper()
	tokens, err := NewTokenIssuer("secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	return NewAuthService(repo, tokens)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	user, err := svc.Register(context.Background(), "alice", "a@x.com", "pw", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Name != "alice" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_HashesAreSalted(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	u1, err := svc.Register(context.Background(), "alice", "a@x.com", "pw", "")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	u2, err := svc.Register(context.Background(), "bob", "b@x.com", "pw", "")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if u1.PasswordHash == u2.PasswordHash {
		t.Fatalf("same plaintext must not produce the same digest twice")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "pw", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other@x.com", "pw2", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "eve", "e@x.com", "pw", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "pw", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "alice", "a@x.com", "pw", "")
	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	// unknown name is indistinguishable from a wrong password
	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
