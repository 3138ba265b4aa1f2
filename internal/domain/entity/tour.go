package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty levels accepted for tours.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// DefaultRatingsAverage is shown for tours without reviews.
const DefaultRatingsAverage = 4.5

// Tour is a bookable trip. Rating statistics are derived from reviews and
// are never taken from client input.
type Tour struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name,omitempty" validate:"required,min=10,max=40"`
	Slug            string               `bson:"slug" json:"slug,omitempty"`
	Duration        int                  `bson:"duration" json:"duration,omitempty" validate:"required,gt=0"`
	MaxGroupSize    int                  `bson:"maxGroupSize" json:"maxGroupSize,omitempty" validate:"required,gt=0"`
	Difficulty      string               `bson:"difficulty" json:"difficulty,omitempty" validate:"required,oneof=easy medium difficult"`
	RatingsAverage  float64              `bson:"ratingsAverage" json:"ratingsAverage,omitempty" validate:"gte=1,lte=5"`
	RatingsQuantity int                  `bson:"ratingsQuantity" json:"ratingsQuantity"`
	Price           float64              `bson:"price" json:"price,omitempty" validate:"required,gt=0"`
	PriceDiscount   *float64             `bson:"priceDiscount,omitempty" json:"priceDiscount,omitempty" validate:"omitempty,gte=0"`
	Summary         string               `bson:"summary" json:"summary,omitempty" validate:"required"`
	Description     string               `bson:"description,omitempty" json:"description,omitempty"`
	ImageCover      string               `bson:"imageCover" json:"imageCover,omitempty" validate:"required"`
	Images          []string             `bson:"images,omitempty" json:"images,omitempty"`
	StartDates      []time.Time          `bson:"startDates,omitempty" json:"startDates,omitempty"`
	SecretTour      bool                 `bson:"secretTour" json:"secretTour,omitempty"`
	StartLocation   *Location            `bson:"startLocation,omitempty" json:"startLocation,omitempty"`
	Locations       []Location           `bson:"locations,omitempty" json:"locations,omitempty"`
	Guides          []primitive.ObjectID `bson:"guides,omitempty" json:"guides,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt,omitzero"`

	// Populated on read-one; never stored.
	GuideDetails []*User   `bson:"-" json:"-"`
	Reviews      []*Review `bson:"-" json:"-"`
}

// GetID returns the document identifier.
func (t *Tour) GetID() primitive.ObjectID { return t.ID }

// SetID assigns the document identifier.
func (t *Tour) SetID(id primitive.ObjectID) { t.ID = id }

// DurationWeeks is derived from the duration in days.
func (t *Tour) DurationWeeks() float64 {
	return float64(t.Duration) / 7
}

// Normalize recomputes derived fields before every save.
func (t *Tour) Normalize() {
	t.Slug = slug.Make(t.Name)
	if t.StartLocation != nil && t.StartLocation.Type == "" {
		t.StartLocation.Type = GeoJSONPoint
	}
	for i := range t.Locations {
		if t.Locations[i].Type == "" {
			t.Locations[i].Type = GeoJSONPoint
		}
	}
}

// DiscountValid reports whether the discount, when set, is below the price.
func (t *Tour) DiscountValid() bool {
	return t.PriceDiscount == nil || *t.PriceDiscount < t.Price
}

// ApplyRatings stores freshly aggregated review statistics.
// With no reviews the tour reverts to the default average.
func (t *Tour) ApplyRatings(quantity int, average float64) {
	t.RatingsQuantity, t.RatingsAverage = NormalizeRatings(quantity, average)
}

// NormalizeRatings rounds the average to one decimal and falls back to the
// default when there are no reviews.
func NormalizeRatings(quantity int, average float64) (int, float64) {
	if quantity <= 0 {
		return 0, DefaultRatingsAverage
	}

	return quantity, math.Round(average*10) / 10
}

// MarshalJSON adds the durationWeeks virtual and swaps in populated guides and reviews.
// The secrecy flag is write-only.
func (t Tour) MarshalJSON() ([]byte, error) {
	type tourAlias Tour
	out := struct {
		tourAlias
		SecretTour    *struct{} `json:"secretTour,omitempty"`
		Guides        any       `json:"guides,omitempty"`
		Reviews       []*Review `json:"reviews,omitempty"`
		DurationWeeks float64   `json:"durationWeeks,omitempty"`
	}{
		tourAlias:     tourAlias(t),
		Reviews:       t.Reviews,
		DurationWeeks: t.DurationWeeks(),
	}
	switch {
	case t.GuideDetails != nil:
		out.Guides = t.GuideDetails
	case len(t.Guides) > 0:
		out.Guides = t.Guides
	}

	return json.Marshal(out)
}

// TourStats is one difficulty bucket of the tour statistics report.
type TourStats struct {
	Difficulty string  `bson:"_id" json:"_id"`
	NumTours   int     `bson:"numTours" json:"numTours"`
	NumRatings int     `bson:"numRatings" json:"numRatings"`
	AvgRating  float64 `bson:"avgRating" json:"avgRating"`
	AvgPrice   float64 `bson:"avgPrice" json:"avgPrice"`
	MinPrice   float64 `bson:"minPrice" json:"minPrice"`
	MaxPrice   float64 `bson:"maxPrice" json:"maxPrice"`
}

// MonthlyPlan lists the tours starting in a given month.
type MonthlyPlan struct {
	Month         int      `bson:"month" json:"month"`
	NumTourStarts int      `bson:"numTourStarts" json:"numTourStarts"`
	Tours         []string `bson:"tours" json:"tours"`
}

// TourDistance is a tour's distance from a reference point.
type TourDistance struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Distance float64            `json:"distance"`
}
