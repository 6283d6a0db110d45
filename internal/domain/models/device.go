package models

import (
	"context"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
)

// Device is a registered mobile installation. The secret is kept only as a
// SHA-256 hash; tokens are issued against it.
type Device struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   string    `json:"device_id"`
	SecretHash string    `json:"-"`
	Platform   string    `json:"platform,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// DeviceToken is an issued access token for a device.
type DeviceToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- context helpers ---

type deviceCtxKey struct{}

var deviceKey = deviceCtxKey{}

// WithDevice stores the authenticated device in the context.
func WithDevice(ctx context.Context, d *Device) context.Context {
	return context.WithValue(ctx, deviceKey, d)
}

// DeviceFromContext returns the authenticated device, or nil.
func DeviceFromContext(ctx context.Context) *Device {
	d, _ := ctx.Value(deviceKey).(*Device)
	return d
}

// DeviceClaims are the validated claims of a device access token.
type DeviceClaims struct {
	TokenID   string
	DeviceID  string
	Platform  string
	ExpiresAt time.Time
}
