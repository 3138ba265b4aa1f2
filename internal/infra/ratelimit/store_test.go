package ratelimit

import (
	"log/slog"
	"testing"
	"time"

	"tourbook/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMemoryStore_BudgetPerIdentifier(t *testing.T) {
	store := NewMemoryStore(3, time.Hour)

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewRedisStore(client, 1, time.Hour, slog.New(slog.DiscardHandler))

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestNewStore(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	store := NewStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	assert.Nil(t, store)

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute}}
	store = NewStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
	assert.NotNil(t, store)
	assert.NotPanics(t, func() { _, _ = store.Allow("ip") })

	cfg.RateLimit.Redis = &config.RedisConfig{Addr: "127.0.0.1:6379"}
	store = NewStore(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
	assert.IsType(t, &RedisStore{}, store)
}
