package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLatLng(t *testing.T) {
	p, ok := ParseLatLng("34.111745,-118.113491")
	assert.True(t, ok)
	assert.InDelta(t, 34.111745, p.Lat(), 1e-9)
	assert.InDelta(t, -118.113491, p.Lng(), 1e-9)

	for _, bad := range []string{"", "34.1", "abc,1", "1,abc", "91,0", "0,181"} {
		_, ok := ParseLatLng(bad)
		assert.False(t, ok, bad)
	}
}

func TestDistanceUnit(t *testing.T) {
	unit, ok := ParseDistanceUnit("mi")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, unit.Radians(3963.2), 1e-9)
	assert.InDelta(t, 0.621371, unit.FromMeters(1000), 1e-9)

	unit, ok = ParseDistanceUnit("km")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, unit.Radians(6378.1), 1e-9)
	assert.InDelta(t, 1.0, unit.FromMeters(1000), 1e-9)

	_, ok = ParseDistanceUnit("ft")
	assert.False(t, ok)
}

func TestDistanceMeters(t *testing.T) {
	la := NewGeoPoint(34.0522, -118.2437)
	sf := NewGeoPoint(37.7749, -122.4194)

	d := DistanceMeters(la, sf)
	assert.InDelta(t, 559_000, d, 5_000)
	assert.Zero(t, DistanceMeters(la, la))
}
