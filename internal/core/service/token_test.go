package service

import (
	"errors"
	"testing"
	"time"

	"github.com/myjournal/journal-api/internal/core/domain"
)

func newTestIssuer(t *testing.T, now time.Time) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer("test-secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	return issuer.WithClock(func() time.Time { return now })
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(t, time.Now())

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestTokenIssuer_ExpiredAtExactBoundary(t *testing.T) {
	issued := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(t, issued)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// one second before expiry the token is still good
	issuer.WithClock(func() time.Time { return issued.Add(30*time.Minute - time.Second) })
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// now == expires_at is already expired, no leeway
	issuer.WithClock(func() time.Time { return issued.Add(30 * time.Minute) })
	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at boundary, got %v", err)
	}

	issuer.WithClock(func() time.Time { return issued.Add(time.Hour) })
	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired past boundary, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := newTestIssuer(t, time.Now())

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	now := time.Now()
	issuer := newTestIssuer(t, now)

	other, err := NewTokenIssuer("other-secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	token, err := other.WithClock(func() time.Time { return now }).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for foreign signature, got %v", err)
	}
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	if _, err := NewTokenIssuer("", "HS256", time.Minute); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenIssuer("secret", "none", time.Minute); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
	if _, err := NewTokenIssuer("secret", "RS256", time.Minute); err == nil {
		t.Fatalf("expected error for asymmetric algorithm")
	}
	if _, err := NewTokenIssuer("secret", "HS512", time.Minute); err != nil {
		t.Fatalf("HS512 should be accepted: %v", err)
	}
}
