package service

import (
	"context"
)

// Review change actions.
const (
	ReviewCreated = "created"
	ReviewUpdated = "updated"
	ReviewDeleted = "deleted"
)

// ReviewChangedEvent is emitted after a tour's rating statistics are recomputed.
type ReviewChangedEvent struct {
	RequestID       string  `json:"request_id,omitempty"` // For distributed tracing
	TourID          string  `json:"tour_id"`
	ReviewID        string  `json:"review_id"`
	Action          string  `json:"action"`
	RatingsQuantity int     `json:"ratings_quantity"`
	RatingsAverage  float64 `json:"ratings_average"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewChanged publishes a review change for downstream consumers
	PublishReviewChanged(ctx context.Context, event *ReviewChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
