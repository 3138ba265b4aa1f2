package entity

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GeoJSONPoint is the only geometry type stored on tours.
const GeoJSONPoint = "Point"

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates orb.Point `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a point from latitude and longitude.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: GeoJSONPoint, Coordinates: orb.Point{lng, lat}}
}

// Lat returns the latitude.
func (p GeoPoint) Lat() float64 { return p.Coordinates.Lat() }

// Lng returns the longitude.
func (p GeoPoint) Lng() float64 { return p.Coordinates.Lon() }

// Location is a named place on a tour itinerary.
type Location struct {
	GeoPoint    `bson:",inline"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Day         int    `bson:"day,omitempty" json:"day,omitempty"`
}

// DistanceUnit is the unit accepted by the geo endpoints.
type DistanceUnit string

const (
	UnitMiles      DistanceUnit = "mi"
	UnitKilometers DistanceUnit = "km"
)

// Earth radius in each unit, used to convert a distance into radians for $centerSphere.
const (
	earthRadiusMiles      = 3963.2
	earthRadiusKilometers = 6378.1

	metersToMiles      = 0.000621371
	metersToKilometers = 0.001
)

// ParseDistanceUnit accepts "mi" or "km".
func ParseDistanceUnit(s string) (DistanceUnit, bool) {
	switch DistanceUnit(s) {
	case UnitMiles:
		return UnitMiles, true
	case UnitKilometers:
		return UnitKilometers, true
	default:
		return "", false
	}
}

// Radians converts a distance in this unit to an angle on the Earth's surface.
func (u DistanceUnit) Radians(distance float64) float64 {
	if u == UnitMiles {
		return distance / earthRadiusMiles
	}

	return distance / earthRadiusKilometers
}

// FromMeters converts a distance in meters to this unit.
func (u DistanceUnit) FromMeters(meters float64) float64 {
	if u == UnitMiles {
		return meters * metersToMiles
	}

	return meters * metersToKilometers
}

// ParseLatLng parses "lat,lng" into a point.
func ParseLatLng(s string) (GeoPoint, bool) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return GeoPoint{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return GeoPoint{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil || lng < -180 || lng > 180 {
		return GeoPoint{}, false
	}

	return NewGeoPoint(lat, lng), true
}

// DistanceMeters is the great-circle distance between two points.
func DistanceMeters(a, b GeoPoint) float64 {
	return geo.DistanceHaversine(a.Coordinates, b.Coordinates)
}
