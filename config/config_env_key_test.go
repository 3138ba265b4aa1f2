package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
			"database":       "natours",
		},
		"rateLimit": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"auth": map[string]any{
			"resetTokenTTL": "10m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "RATELIMIT_REDIS_ADDR", want: "rateLimit.redis.addr"},
		{envKey: "AUTH_RESETTOKENTTL", want: "auth.resetTokenTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.PublicURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordHasher)
	assert.Equal(t, 10*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, cfg.Auth.TokenTTL, cfg.Auth.CookieTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, "log", cfg.Mailer.Provider)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	assert.Error(t, cfg.validate())

	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "natours"
	assert.Error(t, cfg.validate())

	cfg.SecretKey.Access = "secret"
	assert.NoError(t, cfg.validate())
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = EnvDevelopment
	assert.False(t, cfg.IsProduction())
}
