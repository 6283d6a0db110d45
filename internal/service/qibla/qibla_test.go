package qibla

import (
	"errors"
	"math"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
)

var istanbul = models.GeoPoint{Latitude: 41.0082, Longitude: 28.9784}

func TestBearing_IstanbulToKaaba(t *testing.T) {
	c := New()

	res, err := c.ToKaaba(istanbul)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.BearingDegrees-151.6206) > 0.1 {
		t.Fatalf("bearing: got %.4f, want ~151.62", res.BearingDegrees)
	}
	if math.Abs(res.DistanceKm-2405.07) > 5 {
		t.Fatalf("distance: got %.2f km, want ~2405", res.DistanceKm)
	}
}

func TestBearing_KaabaToKaaba(t *testing.T) {
	c := New()

	res, err := c.ToKaaba(Kaaba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.DistanceKm > 1e-9 {
		t.Fatalf("distance from Kaaba to itself must be 0, got %g", res.DistanceKm)
	}
	if res.BearingDegrees != 0 {
		t.Fatalf("bearing from Kaaba to itself is 0 by convention, got %g", res.BearingDegrees)
	}
}

func TestBearing_OutputRanges(t *testing.T) {
	c := New()

	points := []models.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 90, Longitude: 0},
		{Latitude: -90, Longitude: 0},
		{Latitude: 41.0082, Longitude: 28.9784},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 35.6762, Longitude: 139.6503},
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: 64.1355, Longitude: -21.8954},
		{Latitude: -6.2088, Longitude: 106.8456},
		{Latitude: 21.4225, Longitude: -140.1738}, // antipodal-ish longitude
	}

	for _, p := range points {
		res, err := c.ToKaaba(p)
		if err != nil {
			t.Fatalf("point %+v: unexpected error: %v", p, err)
		}
		if res.BearingDegrees < 0 || res.BearingDegrees >= 360 {
			t.Errorf("point %+v: bearing %.4f out of [0,360)", p, res.BearingDegrees)
		}
		if res.DistanceKm < 0 {
			t.Errorf("point %+v: negative distance %.4f", p, res.DistanceKm)
		}
	}
}

func TestBearing_InvalidCoordinates(t *testing.T) {
	c := New()

	bad := []models.GeoPoint{
		{Latitude: 91, Longitude: 0},
		{Latitude: -90.0001, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -180.5},
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 0, Longitude: math.Inf(1)},
	}

	for _, p := range bad {
		if _, err := c.ToKaaba(p); !errors.Is(err, types.ErrInvalidCoordinate) {
			t.Errorf("point %+v: expected ErrInvalidCoordinate, got %v", p, err)
		}
	}
}

func TestBearing_EquatorDueNorth(t *testing.T) {
	c := New()

	// Observer due south of the target on the same meridian.
	res, err := c.Bearing(
		models.GeoPoint{Latitude: 0, Longitude: 39.8262},
		models.GeoPoint{Latitude: 21.4225, Longitude: 39.8262},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.BearingDegrees) > 1e-9 && math.Abs(res.BearingDegrees-360) > 1e-9 {
		t.Fatalf("expected due north, got %.6f", res.BearingDegrees)
	}
}

func BenchmarkToKaaba(b *testing.B) {
	c := New()

	for b.Loop() {
		_, _ = c.ToKaaba(istanbul)
	}
}
