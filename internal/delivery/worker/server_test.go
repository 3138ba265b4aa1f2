package worker

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourbook/config"
	"tourbook/internal/delivery/worker/handler"
	mockusecase "tourbook/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewEcho_Routes(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.DiscardHandler)
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, ReviewUC: reviewUC})
	e := NewEcho(cfg, logger, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	reviewUC.EXPECT().ReconcileRatings(mock.Anything, "5c88fa8cf4afda39709c2955").Return(nil)
	data := base64.StdEncoding.EncodeToString([]byte(`{"tour_id":"5c88fa8cf4afda39709c2955","action":"updated"}`))
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+data+`","messageId":"1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
