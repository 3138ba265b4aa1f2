package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"tourbook/internal/delivery/api/response"
	"tourbook/internal/domain/entity"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// topFiveCheapQuery backs the /tours/top-5-cheap alias.
const topFiveCheapQuery = "limit=5&sort=-ratingsAverage,price&fields=name,price,ratingsAverage,summary,difficulty"

// tourReadOnlyFields are derived by the server and never accepted from clients.
var tourReadOnlyFields = []string{"id", "_id", "slug", "ratingsAverage", "ratingsQuantity", "createdAt", "durationWeeks", "reviews"}

// TourHandlerParams holds dependencies for TourHandler, injected by Fx.
type TourHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// TourHandler serves the tour resource and its reports.
type TourHandler struct {
	*ResourceHandler[entity.Tour]

	tourUC usecase.TourUsecase
	logger *slog.Logger
}

// NewTourHandler is the constructor for TourHandler
func NewTourHandler(params TourHandlerParams) *TourHandler {
	return &TourHandler{
		ResourceHandler: NewResourceHandler(usecase.ResourceUsecase[entity.Tour](params.TourUC), ResourceOptions[entity.Tour]{
			Single:   "tour",
			Plural:   "tours",
			ReadOnly: tourReadOnlyFields,
		}),
		tourUC: params.TourUC,
		logger: params.Logger,
	}
}

// TopFiveCheap lists the five best rated tours, cheapest first among equals.
// Client parameters not fixed by the alias still apply.
func (h *TourHandler) TopFiveCheap(c echo.Context) error {
	values, _ := url.ParseQuery(topFiveCheapQuery)
	for key, v := range c.QueryParams() {
		if _, fixed := values[key]; !fixed {
			values[key] = v
		}
	}

	return h.ListWith(c, values)
}

// Stats reports rating and price statistics per difficulty.
func (h *TourHandler) Stats(c echo.Context) error {
	stats, err := h.tourUC.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "stats", stats)
}

// MonthlyPlan reports how many tours start in each month of a year.
func (h *TourHandler) MonthlyPlan(c echo.Context) error {
	plan, err := h.tourUC.MonthlyPlan(c.Request().Context(), c.Param("year"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "plan", plan)
}

// ToursWithin handles /tours-within/:distance/center/:latlng/unit/:unit.
func (h *TourHandler) ToursWithin(c echo.Context) error {
	tours, err := h.tourUC.ToursWithin(c.Request().Context(), c.Param("distance"), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		return err
	}

	return response.List(c, "tours", tours, len(tours))
}

// Distances handles /distances/:latlng/unit/:unit.
func (h *TourHandler) Distances(c echo.Context) error {
	distances, err := h.tourUC.Distances(c.Request().Context(), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "distances", distances)
}

// ShareQR returns a PNG QR code linking to the tour.
func (h *TourHandler) ShareQR(c echo.Context) error {
	png, err := h.tourUC.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
