package pubsub

import (
	"encoding/json"

	"tourbook/internal/domain/service"

	"github.com/pkg/errors"
)

const eventReviewChanged = "review.changed"

// envelope is the payload and routing metadata shared by every transport.
type envelope struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps events for one tour in publish order.
	orderingKey string
}

func newEnvelope(event *service.ReviewChangedEvent) (*envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode review event")
	}

	attributes := map[string]string{
		"event":     eventReviewChanged,
		"tour_id":   event.TourID,
		"review_id": event.ReviewID,
		"action":    event.Action,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &envelope{data: data, attributes: attributes, orderingKey: event.TourID}, nil
}

func (e *envelope) logAttrs() []any {
	return []any{"tour_id", e.attributes["tour_id"], "action", e.attributes["action"]}
}
