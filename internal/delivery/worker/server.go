// Package worker serves the Pub/Sub push endpoint that keeps tour rating
// statistics consistent with their reviews.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tourbook/config"
	"tourbook/internal/delivery"
	"tourbook/internal/delivery/middleware"
	"tourbook/internal/delivery/worker/handler"
	"tourbook/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pushPath   = "/push"
	healthPath = "/health"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer wraps the push routes in an http.Server honouring the configured timeouts.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg
	srv := &server{
		logger: params.Logger,
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
			Handler:           NewEcho(cfg, params.Logger, params.PushHandler),
			ReadTimeout:       cfg.HTTP.Timeouts.ReadTimeout,
			ReadHeaderTimeout: cfg.HTTP.Timeouts.ReadHeaderTimeout,
			WriteTimeout:      cfg.HTTP.Timeouts.WriteTimeout,
			IdleTimeout:       cfg.HTTP.Timeouts.IdleTimeout,
		},
	}

	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// NewEcho registers the health check and the push endpoint.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET(healthPath, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.POST(pushPath, pushHandler.HandlePush)

	return e
}

func (s *server) Serve(_ context.Context) error {
	s.logger.Info("Rating worker listening", slog.String("addr", s.httpServer.Addr))

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Rating worker shutting down")

	return errors.WithStack(s.httpServer.Shutdown(ctx))
}
