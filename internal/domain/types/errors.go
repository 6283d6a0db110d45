package types

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate: latitude must be in [-90,90], longitude in [-180,180]")

	ErrDeviceNotFound          = errors.New("device not found")
	ErrDeviceAlreadyRegistered = errors.New("device already registered")
	ErrInvalidDeviceSecret     = errors.New("invalid device secret")

	ErrSettingsNotFound = errors.New("settings not found")
	ErrNotFound         = errors.New("requested item not found")

	ErrUpstreamUnavailable = errors.New("prayer times upstream unavailable")

	ErrDatabaseFailed = errors.New("database operation failed")
)
