package dto

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
)

type RegisterDeviceReq struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
	Platform string `json:"platform"`
}

func (r *RegisterDeviceReq) Validate(v *validator.Validator) {
	v.Check(r.DeviceID != "", "device_id", "must be provided")
	v.Check(len(r.DeviceID) <= 128, "device_id", "must be at most 128 characters")

	v.Check(r.Secret != "", "secret", "must be provided")
	v.Check(len(r.Secret) >= 16, "secret", "must be at least 16 characters")
	v.Check(len(r.Secret) <= 256, "secret", "must be at most 256 characters")

	if r.Platform != "" {
		v.Check(
			validator.In(r.Platform, types.PlatformAndroid.String(), types.PlatformIOS.String()),
			"platform", "must be android or ios",
		)
	}
}

type DeviceTokenReq struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
}

func (r *DeviceTokenReq) Validate(v *validator.Validator) {
	v.Check(r.DeviceID != "", "device_id", "must be provided")
	v.Check(r.Secret != "", "secret", "must be provided")
}
