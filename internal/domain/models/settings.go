package models

import (
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
)

// DeviceSettings is the per-device user preference record. The calibration
// offset is the durable store for the compass calibration, so settings saved
// over REST and calibration changes made over the live stream land in one row.
type DeviceSettings struct {
	ID       uuid.UUID `json:"id"`
	DeviceID string    `json:"device_id"`

	Language            string `json:"language"`
	Theme               string `json:"theme"`
	NotificationEnabled bool   `json:"notification_enabled"`
	NotificationSound   string `json:"notification_sound"`
	CalculationMethod   int    `json:"calculation_method"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`

	CalibrationOffsetDegrees float64 `json:"calibration_offset_degrees"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsUpdate is a partial settings change. Nil pointer fields and empty
// strings were omitted from the request and leave the stored value untouched,
// so an update never has to resend the whole record.
type SettingsUpdate struct {
	Language            string
	Theme               string
	NotificationEnabled *bool
	NotificationSound   string
	CalculationMethod   *int
	Latitude            *float64
	Longitude           *float64
	City                string
	Country             string
}

// Defaults mirrored from the mobile app: Turkish UI, dark theme, Diyanet method.
const (
	DefaultLanguage          = "tr"
	DefaultTheme             = "dark"
	DefaultNotificationSound = "default"
	DefaultCalculationMethod = 13 // Diyanet Isleri Baskanligi
)

// NewDeviceSettings returns a settings record with app defaults applied.
func NewDeviceSettings(deviceID string) *DeviceSettings {
	now := time.Now().UTC()
	return &DeviceSettings{
		ID:                  uuid.New(),
		DeviceID:            deviceID,
		Language:            DefaultLanguage,
		Theme:               DefaultTheme,
		NotificationEnabled: true,
		NotificationSound:   DefaultNotificationSound,
		CalculationMethod:   DefaultCalculationMethod,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
