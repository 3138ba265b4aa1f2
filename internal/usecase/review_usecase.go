package usecase

import (
	"context"

	"tourbook/internal/domain/entity"
)

// ReviewUsecase manages reviews. Every write recomputes the reviewed tour's rating statistics.
type ReviewUsecase interface {
	ResourceUsecase[entity.Review]

	// ReconcileRatings recomputes a tour's rating statistics from its current reviews
	// without publishing. tourID is the hex object id.
	ReconcileRatings(ctx context.Context, tourID string) error
}
