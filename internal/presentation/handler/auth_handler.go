package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"photovault/internal/infrastructure/identity"
)

const stateCookie = "auth_state"

type AuthHandler struct {
	provider *identity.Provider
}

func NewAuthHandler(provider *identity.Provider) *AuthHandler {
	return &AuthHandler{
		provider: provider,
	}
}

// HandleLogin handles GET /auth/login requests: it parks a random state in a
// short-lived cookie and redirects to the identity provider.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	state := uuid.New().String()

	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// HandleCallback handles GET /auth/callback requests from the identity
// provider. The state must match the cookie set at login.
func (h *AuthHandler) HandleCallback(c echo.Context) error {
	cookie, err := c.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		return c.String(http.StatusBadRequest, "state mismatch")
	}

	accessToken, rawIDToken, err := h.provider.Exchange(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return c.String(http.StatusUnauthorized, "code exchange failed")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": accessToken,
		"id_token":     rawIDToken,
	})
}
