package models

import "math"

// HeadingSample is one raw 3-axis magnetometer reading. Transient, consumed
// immediately by the heading tracker.
type HeadingSample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Finite reports whether all components are usable numbers.
// Malformed samples are dropped, the previous heading is retained.
func (s HeadingSample) Finite() bool {
	for _, v := range [3]float64{s.X, s.Y, s.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TurnDirection tells the user which way to rotate to face the target.
type TurnDirection string

const (
	TurnNone  TurnDirection = "none"
	TurnLeft  TurnDirection = "left"
	TurnRight TurnDirection = "right"
)

// RelativeDirection classifies the current heading against the target bearing.
// AngleDegrees is the clockwise offset from heading to target in [0,360);
// MagnitudeDegrees is how far to turn in the reported direction.
type RelativeDirection struct {
	Aligned          bool          `json:"aligned"`
	Turn             TurnDirection `json:"turn"`
	AngleDegrees     float64       `json:"angle_degrees"`
	MagnitudeDegrees float64       `json:"magnitude_degrees"`
}

// CompassFrame is one outbound websocket update for a compass client.
type CompassFrame struct {
	HeadingDegrees    float64 `json:"heading_degrees"`
	RawHeadingDegrees float64 `json:"raw_heading_degrees"`
	TargetBearing     float64 `json:"target_bearing_degrees"`
	DistanceKm        float64 `json:"distance_km"`

	RelativeDirection
}
