package handler

import (
	"context"
	"net/http"
	"time"

	"tourbook/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB *mongo.Database `optional:"true"`
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db *mongo.Database
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB}
}

// Check answers 200 when healthy and 503 when the database does not respond.
func (h *HealthHandler) Check(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.Client().Ping(ctx, nil); err != nil {
			return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Database unavailable")
		}
	}

	return response.Message(c, http.StatusOK, "ok")
}
