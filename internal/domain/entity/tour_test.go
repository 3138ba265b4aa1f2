package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTour_NormalizeDerivesSlug(t *testing.T) {
	tour := &Tour{
		Name:          "The Forest Hiker",
		StartLocation: &Location{GeoPoint: GeoPoint{Coordinates: [2]float64{-80.18, 25.77}}},
		Locations:     []Location{{Day: 1}},
	}
	tour.Normalize()

	assert.Equal(t, "the-forest-hiker", tour.Slug)
	assert.Equal(t, GeoJSONPoint, tour.StartLocation.Type)
	assert.Equal(t, GeoJSONPoint, tour.Locations[0].Type)

	tour.Name = "The Sea Explorer"
	tour.Normalize()
	assert.Equal(t, "the-sea-explorer", tour.Slug)
}

func TestTour_DiscountValid(t *testing.T) {
	lower, equal := 100.0, 497.0
	tour := &Tour{Price: 497}

	assert.True(t, tour.DiscountValid())

	tour.PriceDiscount = &lower
	assert.True(t, tour.DiscountValid())

	tour.PriceDiscount = &equal
	assert.False(t, tour.DiscountValid())
}

func TestNormalizeRatings(t *testing.T) {
	qty, avg := NormalizeRatings(3, 4.666666)
	assert.Equal(t, 3, qty)
	assert.InDelta(t, 4.7, avg, 1e-9)

	qty, avg = NormalizeRatings(0, 0)
	assert.Equal(t, 0, qty)
	assert.InDelta(t, DefaultRatingsAverage, avg, 1e-9)
}

func TestTour_MarshalJSON(t *testing.T) {
	guideID := primitive.NewObjectID()
	tour := Tour{Name: "The Park Camper", Duration: 14, Guides: []primitive.ObjectID{guideID}, SecretTour: true}

	raw, err := json.Marshal(tour)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.InDelta(t, 2.0, out["durationWeeks"], 1e-9)
	assert.Equal(t, []any{guideID.Hex()}, out["guides"])
	assert.NotContains(t, out, "secretTour")

	var decoded Tour
	require.NoError(t, json.Unmarshal([]byte(`{"name":"The Secret Forest Hike","secretTour":true}`), &decoded))
	assert.True(t, decoded.SecretTour, "writable on create and update")

	tour.GuideDetails = []*User{{ID: guideID, Name: "Lourdes"}}
	raw, err = json.Marshal(&tour)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))

	guides, ok := out["guides"].([]any)
	require.True(t, ok)
	require.Len(t, guides, 1)
	assert.Equal(t, "Lourdes", guides[0].(map[string]any)["name"])
}
