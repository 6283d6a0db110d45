package compass

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

// DefaultSmoothingAlpha trades responsiveness for jitter suppression in the
// exponential low-pass filter applied to raw headings.
const DefaultSmoothingAlpha = 0.15

// HeadingTracker converts a magnetometer sample stream into a stable compass
// heading. It is stateful and not goroutine safe: all calls are expected to
// arrive serialized from a single sensor read loop.
type HeadingTracker struct {
	mapper AxisMapper
	alpha  float64

	raw         float64
	smoothed    float64
	offset      float64
	initialized bool
}

// NewHeadingTracker builds a tracker with the given axis strategy and
// smoothing factor. alpha outside (0,1] falls back to the default.
func NewHeadingTracker(mapper AxisMapper, alpha float64) *HeadingTracker {
	if mapper == nil {
		mapper = AndroidAxisMapper
	}
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultSmoothingAlpha
	}
	return &HeadingTracker{
		mapper: mapper,
		alpha:  alpha,
	}
}

// Update feeds one magnetometer sample into the filter. Non-finite samples
// are dropped and the last known heading is retained.
func (t *HeadingTracker) Update(sample models.HeadingSample) {
	if !sample.Finite() {
		return
	}

	t.raw = t.mapper(sample.X, sample.Y, sample.Z)

	if !t.initialized {
		// Seed the filter with the first reading so startup does not sweep
		// in from an arbitrary zero.
		t.smoothed = t.raw
		t.initialized = true
		return
	}

	t.smoothed = normalize360(t.smoothed + t.alpha*wrapDelta(t.raw-t.smoothed))
}

// CalibrateToCurrentAsZero makes the present physical orientation read as
// north. The caller is responsible for persisting the new offset.
func (t *HeadingTracker) CalibrateToCurrentAsZero() {
	t.offset = -t.smoothed
}

// AdjustCalibration nudges the calibration offset by delta degrees.
func (t *HeadingTracker) AdjustCalibration(deltaDegrees float64) {
	t.offset += deltaDegrees
}

// ResetCalibration clears any calibration offset.
func (t *HeadingTracker) ResetCalibration() {
	t.offset = 0
}

// SetCalibrationOffset replaces the offset, e.g. with a persisted value.
func (t *HeadingTracker) SetCalibrationOffset(offsetDegrees float64) {
	t.offset = offsetDegrees
}

// CalibrationOffset returns the current calibration offset in degrees.
func (t *HeadingTracker) CalibrationOffset() float64 {
	return t.offset
}

// Heading returns the calibrated, smoothed heading in [0,360).
func (t *HeadingTracker) Heading() float64 {
	return normalize360(t.smoothed + t.offset)
}

// RawHeading returns the last unsmoothed heading in [0,360).
func (t *HeadingTracker) RawHeading() float64 {
	return t.raw
}
