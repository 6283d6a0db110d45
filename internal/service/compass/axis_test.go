package compass

import (
	"math"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
)

func TestAndroidAxisMapper_CardinalDirections(t *testing.T) {
	cases := []struct {
		x, y float64
		want float64
	}{
		{0, 1, 0},    // north
		{-1, 0, 90},  // east
		{0, -1, 180}, // south
		{1, 0, 270},  // west
	}

	for _, tc := range cases {
		got := AndroidAxisMapper(tc.x, tc.y, 0)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("x=%g y=%g: got %.4f, want %.0f", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIOSAxisMapper_MirrorsAndroid(t *testing.T) {
	// The two conventions differ by a flipped x axis.
	for deg := 0.0; deg < 360; deg += 30 {
		rad := deg * math.Pi / 180
		x, y := -math.Sin(rad), math.Cos(rad)

		android := AndroidAxisMapper(x, y, 0)
		ios := IOSAxisMapper(-x, y, 0)
		if math.Abs(wrapDelta(android-ios)) > 1e-9 {
			t.Errorf("deg=%g: android %.4f != ios(mirrored) %.4f", deg, android, ios)
		}
	}
}

func TestMapperForPlatform(t *testing.T) {
	if MapperForPlatform(types.PlatformIOS)(1, 0, 0) != IOSAxisMapper(1, 0, 0) {
		t.Fatal("ios platform should use the ios mapper")
	}
	if MapperForPlatform(types.PlatformAndroid)(1, 0, 0) != AndroidAxisMapper(1, 0, 0) {
		t.Fatal("android platform should use the android mapper")
	}
	if MapperForPlatform("")(1, 0, 0) != AndroidAxisMapper(1, 0, 0) {
		t.Fatal("unknown platform should default to android")
	}
}

func TestWrapDelta(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{540, 180},
	}
	for _, tc := range cases {
		if got := wrapDelta(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("wrapDelta(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
