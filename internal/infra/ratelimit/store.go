// Package ratelimit provides echo rate-limiter stores keyed by client IP.
package ratelimit

import (
	"log/slog"
	"time"

	"tourbook/config"

	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// StoreParams holds dependencies for the rate-limit store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore returns a Redis sliding-window store when Redis is configured,
// otherwise an in-process token bucket sized to the same budget.
// It returns nil when rate limiting is disabled.
func NewStore(params StoreParams) middleware.RateLimiterStore {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return nil
	}

	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		params.Logger.Info("Using in-memory rate limit store",
			slog.Int("requests", cfg.Requests),
			slog.Duration("window", cfg.Window),
		)

		return NewMemoryStore(cfg.Requests, cfg.Window)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	params.Lc.Append(fx.StopHook(client.Close))
	params.Logger.Info("Using Redis rate limit store",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("requests", cfg.Requests),
		slog.Duration("window", cfg.Window),
	)

	return NewRedisStore(client, cfg.Requests, cfg.Window, params.Logger)
}

// NewMemoryStore allows a burst of requests per identifier, refilled evenly across window.
func NewMemoryStore(requests int, window time.Duration) middleware.RateLimiterStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(requests) / window.Seconds()),
		Burst:     requests,
		ExpiresIn: window,
	})
}

// Module provides the rate-limit store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
