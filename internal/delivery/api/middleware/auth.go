package middleware

import (
	"strings"

	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/constants"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoggedOutCookieValue replaces the token cookie on logout.
const LoggedOutCookieValue = "loggedout"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate resolves the bearer token to a user and stores it on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return domainerrors.ErrTokenMissing
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RestrictTo admits principals holding at least one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RestrictTo(roles ...entity.Role) echo.MiddlewareFunc {
	required := make([]string, len(roles))
	for i, r := range roles {
		required[i] = string(r)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetUserFromEcho(c)
			if user == nil {
				return domainerrors.ErrTokenMissing
			}
			if !user.Roles.HasAny(roles...) {
				return domainerrors.NewAuthorizationError(required)
			}

			return next(c)
		}
	}
}

// extractToken prefers the Authorization header and falls back to the cookie.
func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	cookie, err := c.Cookie(constants.AccessTokenCookie)
	if err != nil || cookie.Value == LoggedOutCookieValue {
		return ""
	}

	return cookie.Value
}
