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

type DeviceRepo struct {
	db *pgxpool.Pool
}

func NewDeviceRepo(db *pgxpool.Pool) *DeviceRepo {
	return &DeviceRepo{
		db: db,
	}
}

// Create inserts a device row. device_id carries a unique constraint.
func (r *DeviceRepo) Create(ctx context.Context, d *models.Device) error {
	if d == nil {
		return errors.New("nil device")
	}

	const q = `
		INSERT INTO devices (id, device_id, secret_hash, platform, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	start := time.Now()
	_, err := TxorDB(ctx, r.db).Exec(ctx, q, d.ID, d.DeviceID, d.SecretHash, d.Platform, d.CreatedAt)
	metrics.RecordDatabaseQuery("postgres", "device_create", err, time.Since(start))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return types.ErrDeviceAlreadyRegistered
		}
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

// GetByDeviceID fetches by the client-chosen device identifier (unique).
func (r *DeviceRepo) GetByDeviceID(ctx context.Context, deviceID string) (*models.Device, error) {
	if deviceID == "" {
		return nil, errors.New("device_id is required")
	}

	const q = `
		SELECT id, device_id, secret_hash, platform, created_at
		FROM devices
		WHERE device_id = $1;
	`

	var d models.Device
	start := time.Now()
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, deviceID).Scan(
		&d.ID,
		&d.DeviceID,
		&d.SecretHash,
		&d.Platform,
		&d.CreatedAt,
	)
	metrics.RecordDatabaseQuery("postgres", "device_get", err, time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrDeviceNotFound
		}
		return nil, err
	}

	return &d, nil
}
