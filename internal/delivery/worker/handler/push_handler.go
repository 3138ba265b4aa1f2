// Package handler decodes Pub/Sub push deliveries for the rating worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"tourbook/config"
	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/constants"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/service"
	"tourbook/internal/errors"
	"tourbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// PushRequest is the JSON body of a Pub/Sub push delivery.
type PushRequest struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// transientError marks failures worth a redelivery.
type transientError struct{ cause error }

func (e *transientError) Error() string { return "transient: " + e.cause.Error() }
func (e *transientError) Unwrap() error { return e.cause }

func isTransient(err error) bool {
	_, ok := errors.AsType[*transientError](err)

	return ok
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler reconciles tour rating statistics from review.changed deliveries.
// Pub/Sub redelivers on any non-2xx answer, so only transient failures answer 503.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	reviewUC       usecase.ReviewUsecase
}

type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ReviewUC usecase.ReviewUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsub := params.Config.PubSub

	return &PushHandler{
		// only Google push subscriptions attach a signed OIDC token
		verifyPushAuth: pubsub != nil && pubsub.Provider == constants.PubSubProviderGoogle && params.Config.IsProduction(),
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		reviewUC:       params.ReviewUC,
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push delivery", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var req PushRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("[Worker] Unreadable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := decodeEvent(req.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Unreadable review event", slog.String("message_id", req.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.requestID(c.Request().Context(), &req.Message, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("tour_id", event.TourID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(c.Request().Context(), requestID), logger)

	logger.Info("[Worker] Review event received",
		slog.String("message_id", req.Message.MessageID),
		slog.String("action", event.Action),
	)

	err = h.reconcile(ctx, event)
	switch {
	case err == nil:
		logger.Info("[Worker] Tour ratings reconciled")
	case isTransient(err):
		logger.Error("[Worker] Reconcile failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Warn("[Worker] Reconcile failed, dropping event", slog.Any("error", err))
	}

	return c.NoContent(http.StatusOK)
}

func decodeEvent(data string) (*service.ReviewChangedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	event := new(service.ReviewChangedEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, errors.Wrap(err, "parse review event")
	}

	return event, nil
}

// requestID prefers the message attribute, then the event, then the delivery request.
func (h *PushHandler) requestID(ctx context.Context, msg *PushMessage, event *service.ReviewChangedEvent) string {
	for _, id := range []string{msg.Attributes["request_id"], event.RequestID, deliverycontext.GetRequestIDFromContext(ctx)} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// reconcile recomputes the tour's statistics. Client-class failures such as an
// unknown tour can never succeed on redelivery.
func (h *PushHandler) reconcile(ctx context.Context, event *service.ReviewChangedEvent) error {
	if event.TourID == "" {
		return errors.New("event has no tour_id")
	}

	err := h.reviewUC.ReconcileRatings(ctx, event.TourID)
	if err == nil {
		return nil
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.IsOperational() && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	return &transientError{cause: err}
}

// verifyPubSubToken checks the OIDC token Google signs for push subscriptions.
// Its audience is the URL of this endpoint.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	payload, err := h.validateToken(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email not verified")
	}

	return nil
}
