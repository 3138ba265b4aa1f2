package middleware

import (
	domainerrors "tourbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Store echomiddleware.RateLimiterStore `optional:"true"`
}

// RateLimitMiddleware caps requests per client IP on sensitive routes.
type RateLimitMiddleware struct {
	store echomiddleware.RateLimiterStore
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
// A nil store disables limiting.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{store: params.Store}
}

// Limit returns the middleware to mount on a route.
func (m *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	if m.store == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: m.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return domainerrors.NewUnexpectedError(err, "rate limit identifier")
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}
