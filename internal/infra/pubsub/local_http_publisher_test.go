package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/config"
	"tourbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishReviewChanged(t *testing.T) {
	var received PushRequest
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.ReviewChangedEvent{
		RequestID:       "req-1",
		TourID:          "tour-1",
		ReviewID:        "review-1",
		Action:          service.ReviewCreated,
		RatingsQuantity: 3,
		RatingsAverage:  4.7,
	}

	require.NoError(t, publisher.PublishReviewChanged(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "tour-1", received.Message.Attributes["tour_id"])
	assert.Equal(t, "created", received.Message.Attributes["action"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ReviewChangedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishReviewChanged(context.Background(), &service.ReviewChangedEvent{TourID: "t"})
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishReviewChanged(context.Background(), &service.ReviewChangedEvent{}))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "noop"}))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.ErrorContains(t, err, "unknown pubsub provider")
}

func TestNewEnvelope(t *testing.T) {
	env, err := newEnvelope(&service.ReviewChangedEvent{TourID: "tour-1", ReviewID: "r-1", Action: service.ReviewDeleted})
	require.NoError(t, err)

	assert.Equal(t, "tour-1", env.orderingKey)
	assert.Equal(t, map[string]string{
		"event":     "review.changed",
		"tour_id":   "tour-1",
		"review_id": "r-1",
		"action":    service.ReviewDeleted,
	}, env.attributes)
	assert.JSONEq(t, `{"tour_id":"tour-1","review_id":"r-1","action":"deleted","ratings_quantity":0,"ratings_average":0}`, string(env.data))
}
