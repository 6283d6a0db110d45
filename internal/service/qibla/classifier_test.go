package qibla

import (
	"math"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

func TestClassify_Aligned(t *testing.T) {
	c := New()

	cases := []struct {
		target, heading float64
	}{
		{150, 150},
		{150, 145},
		{150, 155},
		{5, 358}, // across the wraparound
		{358, 5},
	}

	for _, tc := range cases {
		res := c.Classify(tc.target, tc.heading, DefaultToleranceDegrees)
		if !res.Aligned || res.Turn != models.TurnNone {
			t.Errorf("target=%g heading=%g: expected aligned, got %+v", tc.target, tc.heading, res)
		}
	}
}

func TestClassify_ToleranceBoundaryIsStrict(t *testing.T) {
	c := New()

	// Exactly at tolerance: not aligned.
	res := c.Classify(160, 150, 10)
	if res.Aligned {
		t.Fatalf("angle exactly at tolerance must not be aligned: %+v", res)
	}
	if res.Turn != models.TurnRight || res.MagnitudeDegrees != 10 {
		t.Fatalf("expected 10 degree right turn, got %+v", res)
	}

	// Just inside.
	res = c.Classify(159.99, 150, 10)
	if !res.Aligned {
		t.Fatalf("angle just inside tolerance must be aligned: %+v", res)
	}

	// Same on the left side of the window.
	res = c.Classify(150, 160, 10)
	if res.Aligned {
		t.Fatalf("angle exactly at 360-tolerance must not be aligned: %+v", res)
	}
	if res.Turn != models.TurnLeft || res.MagnitudeDegrees != 10 {
		t.Fatalf("expected 10 degree left turn, got %+v", res)
	}
}

func TestClassify_TurnDirections(t *testing.T) {
	c := New()

	// Target clockwise of heading: turn right.
	res := c.Classify(200, 100, 10)
	if res.Turn != models.TurnRight || res.MagnitudeDegrees != 100 {
		t.Fatalf("expected 100 degree right turn, got %+v", res)
	}

	// Target counterclockwise of heading: turn left.
	res = c.Classify(100, 200, 10)
	if res.Turn != models.TurnLeft || res.MagnitudeDegrees != 100 {
		t.Fatalf("expected 100 degree left turn, got %+v", res)
	}

	// 180 degrees out reports as right by convention.
	res = c.Classify(270, 90, 10)
	if res.Turn != models.TurnRight || res.MagnitudeDegrees != 180 {
		t.Fatalf("expected 180 degree right turn, got %+v", res)
	}
}

func TestClassify_ComplementProperty(t *testing.T) {
	c := New()

	// For any b != h, angle(b,h) + angle(h,b) == 360.
	pairs := [][2]float64{
		{151.62, 10}, {350, 20}, {0.5, 359.5}, {90, 270}, {123.4, 222.9},
	}
	for _, p := range pairs {
		a1 := c.Classify(p[0], p[1], 5).AngleDegrees
		a2 := c.Classify(p[1], p[0], 5).AngleDegrees
		if math.Abs(a1+a2-360) > 1e-9 {
			t.Errorf("b=%g h=%g: %g + %g != 360", p[0], p[1], a1, a2)
		}
	}
}

func TestClassify_AngleRange(t *testing.T) {
	c := New()

	for b := 0.0; b < 360; b += 17 {
		for h := 0.0; h < 360; h += 23 {
			res := c.Classify(b, h, DefaultToleranceDegrees)
			if res.AngleDegrees < 0 || res.AngleDegrees >= 360 {
				t.Fatalf("b=%g h=%g: angle %g out of [0,360)", b, h, res.AngleDegrees)
			}
		}
	}
}
