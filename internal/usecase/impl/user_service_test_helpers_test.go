package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"tourbook/config"
	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			ResetTokenTTL:        10 * time.Minute,
			VerificationTokenTTL: 24 * time.Hour,
		},
	}
	cfg.HTTP.PublicURL = "http://localhost:3000/"

	return cfg
}

func newTestUser(roles ...entity.Role) *entity.User {
	user := entity.NewUser("Leo Gillespie", "leo@example.com", fixedNow.Add(-time.Hour))
	if len(roles) > 0 {
		user.Roles = roles
	}
	user.Password = "stored-hash"

	return user
}

// asPrincipal returns a context carrying user as the authenticated caller.
func asPrincipal(user *entity.User) context.Context {
	return deliverycontext.WithUser(context.Background(), user)
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.HTTPCode())
	if message != "" {
		assert.Equal(t, message, appErr.Message())
	}
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	requireAppError(t, err, http.StatusNotFound, "")
}

func newHexID() string {
	return primitive.NewObjectID().Hex()
}
