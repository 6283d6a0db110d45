package compass

import (
	"math"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
)

// AxisMapper converts a raw 3-axis magnetometer sample into a compass heading
// in degrees (0 = magnetic north, clockwise positive). The mapping depends on
// how the platform's sensor driver orients its axes, so it is a pluggable
// strategy instead of a hard-coded branch.
type AxisMapper func(x, y, z float64) float64

// AndroidAxisMapper matches the axis convention of the Android sensor stack:
// x east, y north when the device lies flat, screen up.
func AndroidAxisMapper(x, y, z float64) float64 {
	return headingFromAtan2(-x, y)
}

// IOSAxisMapper matches the CoreMotion magnetometer convention, which flips
// the x axis relative to Android.
func IOSAxisMapper(x, y, z float64) float64 {
	return headingFromAtan2(x, y)
}

// MapperForPlatform picks the axis strategy for a platform string, defaulting
// to the Android convention.
func MapperForPlatform(p types.Platform) AxisMapper {
	if p == types.PlatformIOS {
		return IOSAxisMapper
	}
	return AndroidAxisMapper
}

func headingFromAtan2(x, y float64) float64 {
	return normalize360(math.Atan2(x, y) * 180 / math.Pi)
}

// normalize360 maps any angle in degrees into [0,360).
func normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapDelta maps an angular difference into (-180,180] so the smoothing
// filter always moves across the short arc, never through the 0/360 seam.
func wrapDelta(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
