package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourbook/config"
	deliverycontext "tourbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "propagates client id", header: "req-123", expected: "req-123"},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("a", 200)},
		{name: "replaces id with spaces", header: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})
			require.NoError(t, h(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		target   string
		handler  echo.HandlerFunc
		contains []string
		silent   bool
	}{
		{
			name:     "debug logs client errors as warnings",
			debug:    true,
			target:   "/api/v1/tours?limit=2",
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusTeapot) },
			contains: []string{`"status":418`, `"query":"limit=2"`, `"level":"WARN"`},
		},
		{
			name:    "debug skips health checks",
			debug:   true,
			target:  "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			silent:  true,
		},
		{
			name:    "quiet without debug",
			target:  "/api/v1/tours",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			silent:  true,
		},
		{
			name:     "server errors always logged",
			target:   "/api/v1/tours",
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) },
			contains: []string{`"status":500`, `"level":"ERROR"`},
		},
		{
			name:     "uncommitted error counts as server error",
			target:   "/api/v1/tours",
			handler:  func(c echo.Context) error { return assert.AnError },
			contains: []string{`"status":500`, `"error":`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.target, nil), httptest.NewRecorder())

			_ = NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(tt.handler)(c)

			if tt.silent {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
