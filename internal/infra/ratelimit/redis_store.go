package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "ratelimit:"
	redisTimeout = 3 * time.Second
)

// RedisStore counts requests in a sorted set per identifier, scored by
// arrival time, so the window slides instead of resetting.
type RedisStore struct {
	client   redis.UniversalClient
	requests int
	window   time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

var _ middleware.RateLimiterStore = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, requests int, window time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client:   client,
		requests: requests,
		window:   window,
		logger:   logger,
		now:      time.Now,
	}
}

// Allow records the request and reports whether it is within budget.
// Redis failures allow the request.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	count, err := s.record(ctx, keyPrefix+identifier)
	if err != nil {
		s.logger.Warn("Rate limit store unavailable, allowing request",
			slog.String("identifier", identifier),
			slog.Any("error", err),
		)

		return true, nil
	}

	return count <= int64(s.requests), nil
}

func (s *RedisStore) record(ctx context.Context, key string) (int64, error) {
	now := s.now()
	windowStart := now.Add(-s.window)

	var card *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart.UnixNano(), 10))
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: uuid.NewString(),
		})
		card = pipe.ZCard(ctx, key)
		pipe.PExpire(ctx, key, s.window)

		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return card.Val(), nil
}
