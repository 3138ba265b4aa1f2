package usecase

import (
	"context"

	"tourbook/internal/domain/entity"
)

// TourUsecase adds the reporting and geo queries to the tour resource.
type TourUsecase interface {
	ResourceUsecase[entity.Tour]

	// Stats groups tours rated 4.5 or better by difficulty.
	Stats(ctx context.Context) ([]*entity.TourStats, error)

	// MonthlyPlan counts tour starts per month of year.
	MonthlyPlan(ctx context.Context, year string) ([]*entity.MonthlyPlan, error)

	// ToursWithin finds tours starting within distance of latlng ("lat,lng") in unit (mi or km).
	ToursWithin(ctx context.Context, distance, latlng, unit string) ([]*entity.Tour, error)

	// Distances lists every tour's distance from latlng, nearest first.
	Distances(ctx context.Context, latlng, unit string) ([]*entity.TourDistance, error)

	// ShareQR renders a QR code linking to the tour.
	ShareQR(ctx context.Context, id string) ([]byte, error)
}
