package context

import (
	"context"

	"tourbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for the authenticated principal.
const KeyUser ContextKey = "user"

// SetUser stores the principal on both the echo context and the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUserFromEcho returns the principal set by the access gate, or nil.
func GetUserFromEcho(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyUser)).(*entity.User); ok {
		return user
	}

	return nil
}

// WithUser returns a new context carrying the principal.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// GetUser extracts the principal from context.Context.
// If not found, returns nil.
func GetUser(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
