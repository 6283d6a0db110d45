package dto

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
)

// Inbound compass stream message. Type selects which fields matter:
// "sample" uses x/y/z, "location" uses latitude/longitude, "adjust" uses delta,
// "calibrate_zero" and "reset" carry no payload.
type CompassMsg struct {
	Type string `json:"type"`

	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Delta *float64 `json:"delta,omitempty"`
}

const (
	MsgSample        = "sample"
	MsgLocation      = "location"
	MsgCalibrateZero = "calibrate_zero"
	MsgAdjust        = "adjust"
	MsgReset         = "reset"
)

func (m *CompassMsg) Validate(v *validator.Validator) {
	switch m.Type {
	case MsgSample:
		v.Check(m.X != nil, "x", "must be provided")
		v.Check(m.Y != nil, "y", "must be provided")
		v.Check(m.Z != nil, "z", "must be provided")
	case MsgLocation:
		if m.Latitude != nil && m.Longitude != nil {
			v.Check(*m.Latitude >= -90 && *m.Latitude <= 90, "latitude", "must be between -90 and 90")
			v.Check(*m.Longitude >= -180 && *m.Longitude <= 180, "longitude", "must be between -180 and 180")
		} else {
			v.Check(m.Latitude != nil, "latitude", "must be provided")
			v.Check(m.Longitude != nil, "longitude", "must be provided")
		}
	case MsgAdjust:
		v.Check(m.Delta != nil, "delta", "must be provided")
	case MsgCalibrateZero, MsgReset:
	default:
		v.AddError("type", "must be one of sample, location, calibrate_zero, adjust, reset")
	}
}

func (m *CompassMsg) Sample() models.HeadingSample {
	return models.HeadingSample{X: *m.X, Y: *m.Y, Z: *m.Z}
}

func (m *CompassMsg) Location() models.GeoPoint {
	return models.GeoPoint{Latitude: *m.Latitude, Longitude: *m.Longitude}
}
