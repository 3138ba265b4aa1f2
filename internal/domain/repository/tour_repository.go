package repository

import (
	"context"

	"tourbook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourRepository stores tours. Secret tours are invisible to every method.
type TourRepository interface {
	Collection[entity.Tour]

	// Stats groups well-rated tours by difficulty.
	Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error)

	// MonthlyPlan counts tour starts per month of year.
	MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error)

	// WithinRadius returns tours whose start location lies within radians of center.
	WithinRadius(ctx context.Context, center entity.GeoPoint, radians float64) ([]*entity.Tour, error)

	// FindWithStartLocation returns id, name and start location of every tour that has one.
	FindWithStartLocation(ctx context.Context) ([]*entity.Tour, error)

	// UpdateRatings writes derived review statistics.
	UpdateRatings(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error
}
