package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fxloydd/marti-takip-api/internal/geo"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.Zero(t, geo.DistanceKm(41.0082, 28.9784, 41.0082, 28.9784))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	// Istanbul -> Ankara and back.
	ab := geo.DistanceKm(41.0082, 28.9784, 39.9334, 32.8597)
	ba := geo.DistanceKm(39.9334, 32.8597, 41.0082, 28.9784)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Istanbul to Ankara is roughly 350 km as the crow flies.
	d := geo.DistanceKm(41.0082, 28.9784, 39.9334, 32.8597)

	assert.InDelta(t, 350, d, 10)
}

func TestDistanceKm_ShortHop(t *testing.T) {
	// ~0.00045 degrees of latitude is about 50 metres.
	d := geo.DistanceKm(41.0000, 29.0000, 41.00045, 29.0000)

	assert.InDelta(t, 0.050, d, 0.002)
}

func TestDistanceKm_NonNegative(t *testing.T) {
	for _, p := range [][4]float64{
		{0, 0, 0, 180},
		{-90, 0, 90, 0},
		{12.34, -56.78, -12.34, 56.78},
	} {
		assert.GreaterOrEqual(t, geo.DistanceKm(p[0], p[1], p[2], p[3]), 0.0)
	}
}
