package settings

import (
	"context"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

type SettingsRepo interface {
	Get(ctx context.Context, deviceID string) (*models.DeviceSettings, error)
	Create(ctx context.Context, s *models.DeviceSettings) error
	Update(ctx context.Context, s *models.DeviceSettings) error
	UpdateCalibration(ctx context.Context, deviceID string, offsetDegrees float64) error
}

type Publisher interface {
	PublishCalibrationUpdate(ctx context.Context, msg models.CalibrationUpdateMessage) error
}
