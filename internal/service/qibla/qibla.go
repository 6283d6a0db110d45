package qibla

import (
	"math"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
)

const (
	// Kaaba coordinates. Canonical values; app builds also shipped 39.8264
	// for the longitude, the difference is below display precision.
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262

	earthRadiusKm = 6371 // mean Earth radius, sphere model

	// DefaultToleranceDegrees is the half-width of the "pointing at the
	// Kaaba" window used by the classifier.
	DefaultToleranceDegrees = 10.0
)

// Kaaba is the fixed target every qibla computation points at.
var Kaaba = models.GeoPoint{Latitude: KaabaLatitude, Longitude: KaabaLongitude}

type Calculator interface {
	Bearing(observer, target models.GeoPoint) (models.BearingResult, error)
	ToKaaba(observer models.GeoPoint) (models.BearingResult, error)
	Classify(targetBearing, heading, toleranceDegrees float64) models.RelativeDirection
}

type CalculatorImpl struct{}

func New() *CalculatorImpl {
	return &CalculatorImpl{}
}

// Bearing computes the initial great-circle bearing from observer to target
// and the haversine distance between them. Pure and deterministic; the only
// failure is an out-of-range or non-finite coordinate.
func (c *CalculatorImpl) Bearing(observer, target models.GeoPoint) (models.BearingResult, error) {
	if !observer.Valid() || !target.Valid() {
		return models.BearingResult{}, types.ErrInvalidCoordinate
	}

	lat1 := observer.Latitude * math.Pi / 180
	lat2 := target.Latitude * math.Pi / 180
	deltaLng := (target.Longitude - observer.Longitude) * math.Pi / 180

	// Initial bearing: atan2(sin dl * cos lat2, cos lat1 * sin lat2 - sin lat1 * cos lat2 * cos dl)
	y := math.Sin(deltaLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLng)
	bearing := normalize360(math.Atan2(y, x) * 180 / math.Pi)

	return models.BearingResult{
		BearingDegrees: bearing,
		DistanceKm:     c.distanceKm(observer, target),
	}, nil
}

// ToKaaba is Bearing with the fixed Kaaba target.
func (c *CalculatorImpl) ToKaaba(observer models.GeoPoint) (models.BearingResult, error) {
	return c.Bearing(observer, Kaaba)
}

// distanceKm computes the great-circle distance using the haversine formula.
func (c *CalculatorImpl) distanceKm(p1, p2 models.GeoPoint) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	diffLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	diffLng := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLng/2), 2)
	angle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * angle
}

// normalize360 maps any angle in degrees into [0,360).
func normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
