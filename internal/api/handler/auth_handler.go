package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/myjournal/journal-api/internal/api/metrics"
	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService ports.AuthService
	cookies     *CookieHelper
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookies *CookieHelper, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, tokenTTL: tokenTTL}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and sets the http-only session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	h.cookies.SetSession(c, token, h.tokenTTL)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; the server keeps no revocation list.
//
// @Summary      Logout
// @Tags         auth
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.ClearSession(c)
	return c.NoContent(http.StatusOK)
}
