package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/trm"
)

// Service manages per-device preferences. Reads fall back to app defaults so
// a device that never saved anything still gets a usable settings payload.
type Service struct {
	repo      SettingsRepo
	publisher Publisher
	trm       trm.TxManager
	log       logger.Logger
}

func New(repo SettingsRepo, publisher Publisher, trm trm.TxManager, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		trm:       trm,
		log:       log,
	}
}

// Get returns the stored settings for the device, or defaults if none exist.
func (s *Service) Get(ctx context.Context, deviceID string) (*models.DeviceSettings, error) {
	ctx = wrap.WithAction(ctx, "settings_get")
	ctx = wrap.WithDeviceID(ctx, deviceID)

	stored, err := s.repo.Get(ctx, deviceID)
	if err != nil {
		if errors.Is(err, types.ErrSettingsNotFound) {
			return models.NewDeviceSettings(deviceID), nil
		}
		return nil, wrap.Error(ctx, err)
	}

	return stored, nil
}

// Upsert saves the device settings, creating the row on first save. Fields
// omitted from the update keep their stored values.
func (s *Service) Upsert(ctx context.Context, deviceID string, incoming *models.SettingsUpdate) (*models.DeviceSettings, error) {
	ctx = wrap.WithAction(ctx, "settings_upsert")
	ctx = wrap.WithDeviceID(ctx, deviceID)

	var saved *models.DeviceSettings

	fn := func(ctx context.Context) error {
		stored, err := s.repo.Get(ctx, deviceID)
		if err != nil && !errors.Is(err, types.ErrSettingsNotFound) {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		now := time.Now().UTC()

		if stored == nil {
			fresh := models.NewDeviceSettings(deviceID)
			applyUpdate(fresh, incoming)
			fresh.UpdatedAt = now
			if err := s.repo.Create(ctx, fresh); err != nil {
				return fmt.Errorf("failed to create settings: %w", err)
			}
			saved = fresh
			return nil
		}

		applyUpdate(stored, incoming)
		stored.UpdatedAt = now
		if err := s.repo.Update(ctx, stored); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		saved = stored
		return nil
	}

	if err := s.trm.Do(ctx, fn); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return saved, nil
}

// SetCalibration persists a calibration offset and fans it out so live
// compass sessions of the same device pick it up.
func (s *Service) SetCalibration(ctx context.Context, deviceID string, offsetDegrees float64, source string) error {
	ctx = wrap.WithAction(ctx, types.ActionCalibrationUpdated)
	ctx = wrap.WithDeviceID(ctx, deviceID)

	fn := func(ctx context.Context) error {
		stored, err := s.repo.Get(ctx, deviceID)
		if err != nil && !errors.Is(err, types.ErrSettingsNotFound) {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if stored == nil {
			fresh := models.NewDeviceSettings(deviceID)
			fresh.CalibrationOffsetDegrees = offsetDegrees
			if err := s.repo.Create(ctx, fresh); err != nil {
				return fmt.Errorf("failed to create settings: %w", err)
			}
			return nil
		}

		if err := s.repo.UpdateCalibration(ctx, deviceID, offsetDegrees); err != nil {
			return fmt.Errorf("failed to update calibration: %w", err)
		}
		return nil
	}

	if err := s.trm.Do(ctx, fn); err != nil {
		return wrap.Error(ctx, err)
	}

	msg := models.CalibrationUpdateMessage{
		DeviceID:      deviceID,
		OffsetDegrees: offsetDegrees,
		Source:        source,
		UpdatedAt:     time.Now().UTC(),
	}

	// Publish failure is logged, not returned: the offset is already durable.
	if err := s.publisher.PublishCalibrationUpdate(ctx, msg); err != nil {
		s.log.Error(ctx, "failed to publish calibration update", err)
	}

	return nil
}

// applyUpdate copies the provided fields from in onto dst, keeping identity
// and timestamps. Omitted fields stay as stored; method 0 is a valid
// calculation method, which is why the update carries pointers.
func applyUpdate(dst *models.DeviceSettings, in *models.SettingsUpdate) {
	if in.Language != "" {
		dst.Language = in.Language
	}
	if in.Theme != "" {
		dst.Theme = in.Theme
	}
	if in.NotificationEnabled != nil {
		dst.NotificationEnabled = *in.NotificationEnabled
	}
	if in.NotificationSound != "" {
		dst.NotificationSound = in.NotificationSound
	}
	if in.CalculationMethod != nil {
		dst.CalculationMethod = *in.CalculationMethod
	}
	if in.Latitude != nil {
		dst.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		dst.Longitude = in.Longitude
	}
	if in.City != "" {
		dst.City = in.City
	}
	if in.Country != "" {
		dst.Country = in.Country
	}
}
