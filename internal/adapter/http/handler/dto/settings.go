package dto

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
)

// SettingsReq is a partial update: absent fields keep their stored values.
// The bool and the method id are pointers so "omitted" and "false"/"0" stay
// distinguishable after decoding.
type SettingsReq struct {
	Language            string   `json:"language"`
	Theme               string   `json:"theme"`
	NotificationEnabled *bool    `json:"notification_enabled"`
	NotificationSound   string   `json:"notification_sound"`
	CalculationMethod   *int     `json:"calculation_method"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	City                string   `json:"city"`
	Country             string   `json:"country"`

	CalibrationOffsetDegrees *float64 `json:"calibration_offset_degrees"`
}

func (r *SettingsReq) Validate(v *validator.Validator) {
	if r.Language != "" {
		v.Check(len(r.Language) <= 8, "language", "must be at most 8 characters")
	}
	if r.Theme != "" {
		v.Check(validator.In(r.Theme, "dark", "light"), "theme", "must be dark or light")
	}
	if r.CalculationMethod != nil {
		v.Check(*r.CalculationMethod >= 0 && *r.CalculationMethod <= 14, "calculation_method", "must be between 0 and 14")
	}
	if r.Latitude != nil && r.Longitude != nil {
		v.Check(*r.Latitude >= -90 && *r.Latitude <= 90, "latitude", "must be between -90 and 90")
		v.Check(*r.Longitude >= -180 && *r.Longitude <= 180, "longitude", "must be between -180 and 180")
	} else {
		v.Check(r.Latitude == nil && r.Longitude == nil, "location", "latitude and longitude must be provided together")
	}
}

func (r *SettingsReq) ToUpdate() *models.SettingsUpdate {
	return &models.SettingsUpdate{
		Language:            r.Language,
		Theme:               r.Theme,
		NotificationEnabled: r.NotificationEnabled,
		NotificationSound:   r.NotificationSound,
		CalculationMethod:   r.CalculationMethod,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		City:                r.City,
		Country:             r.Country,
	}
}
