package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Empty(t, GetRequestIDFromContext(WithRequestID(context.Background(), "")))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("unset", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})

	t.Run("set everywhere", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
		assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
		assert.Equal(t, "req-1", rec.Header().Get(HeaderXRequestID))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSetUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	user := &entity.User{Name: "Leo Gillespie"}

	assert.Nil(t, GetUserFromEcho(c))
	assert.Nil(t, GetUser(c.Request().Context()))

	SetUser(c, user)

	assert.Same(t, user, GetUserFromEcho(c))
	assert.Same(t, user, GetUser(c.Request().Context()))
}
