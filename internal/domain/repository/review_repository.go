package repository

import (
	"context"

	"tourbook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingSummary is the aggregate of all reviews of one tour.
type RatingSummary struct {
	Quantity int
	Average  float64
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	Collection[entity.Review]

	// RatingSummary aggregates count and mean rating for a tour.
	RatingSummary(ctx context.Context, tourID primitive.ObjectID) (*RatingSummary, error)

	// FindByTour lists every review of a tour, newest first.
	FindByTour(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error)

	// Exists reports whether userID already reviewed tourID.
	Exists(ctx context.Context, tourID, userID primitive.ObjectID) (bool, error)
}
