package compass

import (
	"math"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

// sampleAt builds a magnetometer reading that the Android axis mapper
// resolves to the given heading in degrees.
func sampleAt(headingDeg float64) models.HeadingSample {
	rad := headingDeg * math.Pi / 180
	return models.HeadingSample{X: -math.Sin(rad), Y: math.Cos(rad), Z: 0}
}

func TestUpdate_FirstSampleSeedsFilter(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.Update(sampleAt(123))
	if math.Abs(tr.Heading()-123) > 1e-9 {
		t.Fatalf("first sample should seed directly: got %.6f", tr.Heading())
	}
}

func TestUpdate_ConvergesToConstantInput(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.Update(sampleAt(0))
	for range 30 {
		tr.Update(sampleAt(45))
	}

	if err := math.Abs(wrapDelta(tr.Heading() - 45)); err >= 0.5 {
		t.Fatalf("expected convergence to 45 within 30 samples, residual %.4f", err)
	}
}

func TestUpdate_SmoothsAcrossWraparound(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	// 350 -> 10 must go through north, not sweep backwards through 180.
	tr.Update(sampleAt(350))
	tr.Update(sampleAt(10))

	h := tr.Heading()
	if !(h >= 350 || h <= 10) {
		t.Fatalf("smoothing crossed the long way around: heading %.4f", h)
	}
	if math.Abs(wrapDelta(h-353)) > 1e-6 {
		t.Fatalf("expected 350 + 0.15*20 = 353, got %.4f", h)
	}
}

func TestUpdate_MalformedSampleIgnored(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.Update(sampleAt(90))
	before := tr.Heading()

	tr.Update(models.HeadingSample{X: math.NaN(), Y: 1, Z: 0})
	tr.Update(models.HeadingSample{X: 0, Y: math.Inf(-1), Z: 0})

	if tr.Heading() != before {
		t.Fatalf("malformed samples must not change the heading: %.4f -> %.4f", before, tr.Heading())
	}
}

func TestHeading_AlwaysInRange(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.AdjustCalibration(-720.5)
	for deg := 0.0; deg < 360; deg += 7.3 {
		tr.Update(sampleAt(deg))
		h := tr.Heading()
		if h < 0 || h >= 360 {
			t.Fatalf("heading %.4f out of [0,360)", h)
		}
	}
}

func TestCalibrateToCurrentAsZero(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.Update(sampleAt(217))
	tr.CalibrateToCurrentAsZero()

	if h := tr.Heading(); math.Abs(wrapDelta(h)) > 1e-9 {
		t.Fatalf("calibrate-to-zero should read 0, got %.6f", h)
	}
}

func TestAdjustCalibration_RoundTrip(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	before := tr.CalibrationOffset()
	tr.AdjustCalibration(10)
	tr.AdjustCalibration(-10)

	if tr.CalibrationOffset() != before {
		t.Fatalf("offset changed after +10/-10: %.6f -> %.6f", before, tr.CalibrationOffset())
	}
}

func TestResetCalibration(t *testing.T) {
	tr := NewHeadingTracker(AndroidAxisMapper, DefaultSmoothingAlpha)

	tr.Update(sampleAt(90))
	tr.CalibrateToCurrentAsZero()
	tr.AdjustCalibration(33)
	tr.ResetCalibration()

	if tr.CalibrationOffset() != 0 {
		t.Fatalf("expected zero offset after reset, got %.4f", tr.CalibrationOffset())
	}
	if math.Abs(tr.Heading()-90) > 1e-9 {
		t.Fatalf("expected raw smoothed heading 90 after reset, got %.4f", tr.Heading())
	}
}

func TestNewHeadingTracker_AlphaFallback(t *testing.T) {
	for _, alpha := range []float64{0, -1, 1.5} {
		tr := NewHeadingTracker(AndroidAxisMapper, alpha)
		if tr.alpha != DefaultSmoothingAlpha {
			t.Fatalf("alpha %g should fall back to default, got %g", alpha, tr.alpha)
		}
	}
}
