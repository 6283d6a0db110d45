package device

import (
	"context"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

type DeviceRepo interface {
	Create(ctx context.Context, d *models.Device) error
	GetByDeviceID(ctx context.Context, deviceID string) (*models.Device, error)
}
