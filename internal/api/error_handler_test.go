package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/myjournal/journal-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"credential absent", domain.ErrCredentialAbsent, http.StatusUnauthorized},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"token malformed", domain.ErrTokenMalformed, http.StatusUnauthorized},
		{"identity not found", domain.ErrIdentityNotFound, http.StatusUnauthorized},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no edit permission", domain.ErrNoEditPermission, http.StatusForbidden},
		{"no delete permission", domain.ErrNoDeletePermission, http.StatusForbidden},
		{"article not found", domain.ErrArticleNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid date format", domain.ErrInvalidDateFormat, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"storage failure", domain.ErrStorageFailure, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			code, _ := resolveError(tt.err, zerolog.Nop(), c)
			if code != tt.want {
				t.Fatalf("resolveError(%v) = %d, want %d", tt.err, code, tt.want)
			}
		})
	}
}

func TestResolveError_GenericMessageFor500(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	// internal details never leak to the client
	_, msg := resolveError(errors.New("mongo: connection refused"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrArticleNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected JSON envelope, got %q", body)
	}
}
