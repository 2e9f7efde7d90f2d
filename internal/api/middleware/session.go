package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// identityKey is the context key the resolved identity is stored under.
const identityKey = "identity"

// TokenVerifier decodes a raw session token into its subject.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Session resolves the caller's identity from the session cookie and
// injects the full user record into the request context. It is the single
// point of truth for "who is calling"; mount it only on identity-aware
// routes. Failures propagate as domain auth errors, which the central
// error handler turns into 401 responses.
func Session(cookieName string, tokens TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrCredentialAbsent
			}

			subject, err := tokens.Verify(cookie.Value)
			if err != nil {
				return err
			}
			if subject == "" {
				return domain.ErrIdentityNotFound
			}

			user, err := users.FindByName(c.Request().Context(), subject)
			if err != nil {
				// the user may have been deleted after the token was
				// issued; anything else is a store fault, not an auth
				// failure, and must not surface as 401
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrIdentityNotFound
				}
				return err
			}

			SetIdentity(c, user)
			return next(c)
		}
	}
}

// SetIdentity stores the resolved user record on the request context.
func SetIdentity(c echo.Context, user *domain.User) {
	c.Set(identityKey, user)
}

// Identity extracts the user record injected by Session. Returns an error
// when the middleware did not run or did not resolve anyone.
func Identity(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(identityKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
