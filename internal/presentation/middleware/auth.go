package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"photovault/internal/infrastructure/identity"
	"photovault/internal/presentation"
)

// AuthMiddleware verifies the Bearer token of every request against the
// identity provider and stores the verified subject under presentation.UIDKey.
// Handlers downstream never see an unverified identity.
func AuthMiddleware(verifier identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if authHeader == "" {
				return ctx.String(http.StatusUnauthorized, "missing Authorization header")
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return ctx.String(http.StatusUnauthorized, "missing Bearer header prefix")
			}

			rawToken := strings.TrimPrefix(authHeader, "Bearer ")

			subject, err := verifier.Verify(ctx.Request().Context(), rawToken)
			if err != nil {
				return ctx.String(http.StatusUnauthorized, "invalid token")
			}

			ctx.Set(presentation.UIDKey, subject)

			return next(ctx)
		}
	}
}
