package models

import "time"

// RabbitMQ message: calibration change -> <compass_topic> exchange.
// Published by whichever mode changed the offset, consumed by the compass
// gateway so live connections pick up REST-side changes.
type CalibrationUpdateMessage struct {
	DeviceID      string    `json:"device_id"`
	OffsetDegrees float64   `json:"offset_degrees"`
	Source        string    `json:"source"` // "rest" or "stream"
	UpdatedAt     time.Time `json:"updated_at"`
}
