package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie name carrying the session token.
const SessionCookie = "my_journal_access_token"

// CookieHelper manages the authentication cookie. The cookie is always
// http-only; Secure is switched on outside development.
type CookieHelper struct {
	secure bool
}

func NewCookieHelper(secure bool) *CookieHelper {
	return &CookieHelper{secure: secure}
}

// SetSession attaches the session cookie carrying the signed token. MaxAge
// mirrors the token lifetime so the browser drops it around expiry.
func (h *CookieHelper) SetSession(c echo.Context, token string, ttl time.Duration) {
	h.setCookie(c, token, int(ttl.Seconds()))
}

// ClearSession removes the session cookie. Logout is purely client-side;
// the server holds no revocation list.
func (h *CookieHelper) ClearSession(c echo.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) setCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
