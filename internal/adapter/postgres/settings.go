package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

// Get fetches the settings row for a device.
func (r *SettingsRepo) Get(ctx context.Context, deviceID string) (*models.DeviceSettings, error) {
	if deviceID == "" {
		return nil, errors.New("device_id is required")
	}

	const q = `
		SELECT id, device_id, language, theme,
		       notification_enabled, notification_sound, calculation_method,
		       latitude, longitude, city, country,
		       calibration_offset_degrees, created_at, updated_at
		FROM device_settings
		WHERE device_id = $1;
	`

	var s models.DeviceSettings
	start := time.Now()
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, deviceID).Scan(
		&s.ID,
		&s.DeviceID,
		&s.Language,
		&s.Theme,
		&s.NotificationEnabled,
		&s.NotificationSound,
		&s.CalculationMethod,
		&s.Latitude,
		&s.Longitude,
		&s.City,
		&s.Country,
		&s.CalibrationOffsetDegrees,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	metrics.RecordDatabaseQuery("postgres", "settings_get", err, time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrSettingsNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Create inserts a settings row, one per device.
func (r *SettingsRepo) Create(ctx context.Context, s *models.DeviceSettings) error {
	if s == nil {
		return errors.New("nil settings")
	}

	const q = `
		INSERT INTO device_settings (
			id, device_id, language, theme,
			notification_enabled, notification_sound, calculation_method,
			latitude, longitude, city, country,
			calibration_offset_degrees, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	start := time.Now()
	_, err := TxorDB(ctx, r.db).Exec(ctx, q,
		s.ID, s.DeviceID, s.Language, s.Theme,
		s.NotificationEnabled, s.NotificationSound, s.CalculationMethod,
		s.Latitude, s.Longitude, s.City, s.Country,
		s.CalibrationOffsetDegrees, s.CreatedAt, s.UpdatedAt,
	)
	metrics.RecordDatabaseQuery("postgres", "settings_create", err, time.Since(start))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("settings for device already exist: %w", err)
		}
		return fmt.Errorf("failed to insert settings: %w", err)
	}

	return nil
}

// Update rewrites the user-editable columns of an existing row.
func (r *SettingsRepo) Update(ctx context.Context, s *models.DeviceSettings) error {
	if s == nil {
		return errors.New("nil settings")
	}

	const q = `
		UPDATE device_settings
		SET language = $2, theme = $3,
		    notification_enabled = $4, notification_sound = $5, calculation_method = $6,
		    latitude = $7, longitude = $8, city = $9, country = $10,
		    calibration_offset_degrees = $11, updated_at = $12
		WHERE device_id = $1;
	`

	start := time.Now()
	tag, err := TxorDB(ctx, r.db).Exec(ctx, q,
		s.DeviceID, s.Language, s.Theme,
		s.NotificationEnabled, s.NotificationSound, s.CalculationMethod,
		s.Latitude, s.Longitude, s.City, s.Country,
		s.CalibrationOffsetDegrees, s.UpdatedAt,
	)
	metrics.RecordDatabaseQuery("postgres", "settings_update", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrSettingsNotFound
	}

	return nil
}

// UpdateCalibration updates only the calibration offset column.
func (r *SettingsRepo) UpdateCalibration(ctx context.Context, deviceID string, offsetDegrees float64) error {
	const q = `
		UPDATE device_settings
		SET calibration_offset_degrees = $2, updated_at = now()
		WHERE device_id = $1;
	`

	start := time.Now()
	tag, err := TxorDB(ctx, r.db).Exec(ctx, q, deviceID, offsetDegrees)
	metrics.RecordDatabaseQuery("postgres", "settings_update_calibration", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to update calibration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrSettingsNotFound
	}

	return nil
}
