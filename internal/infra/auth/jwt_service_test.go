package auth

import (
	"testing"
	"time"

	"tourbook/config"
	"tourbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	issued := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("5c8a1d5b0190b214360dc057")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5c8a1d5b0190b214360dc057", claims.UserID)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(time.Hour)))
	assert.Equal(t, time.Hour, svc.TokenTTL())
}

func TestJWTService_IssuedAtKeepsMilliseconds(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	for _, ms := range []int{1, 123, 500, 999} {
		issued := time.Date(2026, 10, 16, 9, 30, 15, ms*int(time.Millisecond)+456_789, time.UTC)
		svc.now = func() time.Time { return issued }

		token, err := svc.GenerateToken("5c8a1d5b0190b214360dc057")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IssuedAt.Equal(issued.Truncate(time.Millisecond)), "iat %v", claims.IssuedAt)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("user-id")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	other := newTestJWTService(t, time.Hour)
	other.secret = []byte("a_different_secret")
	token, err := other.GenerateToken("user-id")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_RejectsNonHMAC(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-id",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
