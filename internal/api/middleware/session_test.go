package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/myjournal/journal-api/internal/core/domain"
)

const testCookie = "my_journal_access_token"

type stubVerifier struct {
	subject string
	err     error
}

func (v *stubVerifier) Verify(string) (string, error) {
	return v.subject, v.err
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.Name] = u
	return u, nil
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	u, ok := r.users[name]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newSessionContext(t *testing.T, token string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSession_ResolvesIdentity(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"alice": {Name: "alice", Role: domain.RoleAdmin},
	}}
	mw := Session(testCookie, &stubVerifier{subject: "alice"}, users)

	c := newSessionContext(t, "sometoken")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		identity, err := Identity(c)
		if err != nil {
			t.Fatalf("Identity: %v", err)
		}
		if identity.Name != "alice" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	mw := Session(testCookie, &stubVerifier{subject: "alice"}, &stubUserRepo{users: map[string]*domain.User{}})

	c := newSessionContext(t, "")
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrCredentialAbsent) {
		t.Fatalf("expected ErrCredentialAbsent, got %v", err)
	}
}

func TestSession_TokenErrorsPropagate(t *testing.T) {
	for _, verifyErr := range []error{domain.ErrTokenExpired, domain.ErrTokenMalformed} {
		mw := Session(testCookie, &stubVerifier{err: verifyErr}, &stubUserRepo{users: map[string]*domain.User{}})

		c := newSessionContext(t, "sometoken")
		err := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})(c)

		if !errors.Is(err, verifyErr) {
			t.Fatalf("expected %v, got %v", verifyErr, err)
		}
	}
}

func TestSession_UserDeletedAfterIssuance(t *testing.T) {
	mw := Session(testCookie, &stubVerifier{subject: "ghost"}, &stubUserRepo{users: map[string]*domain.User{}})

	c := newSessionContext(t, "sometoken")
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

type failingUserRepo struct {
	err error
}

func (r *failingUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) FindByName(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func TestSession_StoreFailureIsNotAnAuthFailure(t *testing.T) {
	storeErr := errors.New("mongo: connection refused")
	mw := Session(testCookie, &stubVerifier{subject: "alice"}, &failingUserRepo{err: storeErr})

	c := newSessionContext(t, "sometoken")
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("store failure must not surface as identity-not-found")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestIdentity_MissingFromContext(t *testing.T) {
	c := newSessionContext(t, "")
	if _, err := Identity(c); err == nil {
		t.Fatalf("expected error when middleware did not run")
	}
}
