package handler

import (
	"tourbook/internal/domain/entity"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// tourIDParam is the parent tour in nested review routes.
const tourIDParam = "tourId"

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves /reviews and /tours/:tourId/reviews.
type ReviewHandler struct {
	*ResourceHandler[entity.Review]
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		ResourceHandler: NewResourceHandler(usecase.ResourceUsecase[entity.Review](params.ReviewUC), ResourceOptions[entity.Review]{
			Single:       "review",
			Plural:       "reviews",
			ScopeParam:   tourIDParam,
			ScopeField:   "tour",
			ReadOnly:     []string{"id", "_id", "user", "createdAt"},
			Immutable:    []string{"tour"},
			BeforeCreate: defaultReviewTour,
		}),
	}
}

// defaultReviewTour takes the tour from the nested route when the body names none.
func defaultReviewTour(c echo.Context, review *entity.Review) error {
	raw := c.Param(tourIDParam)
	if raw == "" || !review.Tour.IsZero() {
		return nil
	}

	id, err := parseObjectID(tourIDParam, raw)
	if err != nil {
		return err
	}
	review.Tour = id

	return nil
}
