package device

import (
	"context"
	"errors"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/hasher"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
)

// Service registers devices and issues them access tokens. The device secret
// is generated client-side, hashed here and never stored in the clear.
type Service struct {
	deviceRepo DeviceRepo
	tokens     *TokenService
	log        logger.Logger
}

func New(deviceRepo DeviceRepo, tokens *TokenService, log logger.Logger) *Service {
	return &Service{
		deviceRepo: deviceRepo,
		tokens:     tokens,
		log:        log,
	}
}

// Register stores a new device with a hashed secret.
func (s *Service) Register(ctx context.Context, deviceID, secret, platform string) (*models.Device, error) {
	ctx = wrap.WithAction(ctx, "device_register")
	ctx = wrap.WithDeviceID(ctx, deviceID)

	existing, err := s.deviceRepo.GetByDeviceID(ctx, deviceID)
	if err != nil && !errors.Is(err, types.ErrDeviceNotFound) {
		return nil, wrap.Error(ctx, err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	d := &models.Device{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		SecretHash: hasher.Hash(secret),
		Platform:   platform,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.deviceRepo.Create(ctx, d); err != nil {
		if errors.Is(err, types.ErrDeviceAlreadyRegistered) {
			return nil, ErrAlreadyRegistered
		}
		s.log.Error(ctx, "failed to save device", err)
		return nil, ErrUnexpected
	}

	return d, nil
}

// IssueToken checks the device secret and returns a fresh access token.
func (s *Service) IssueToken(ctx context.Context, deviceID, secret string) (*models.DeviceToken, error) {
	ctx = wrap.WithAction(ctx, "device_issue_token")
	ctx = wrap.WithDeviceID(ctx, deviceID)

	d, err := s.deviceRepo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, types.ErrDeviceNotFound) {
			return nil, ErrInvalidSecret
		}
		return nil, wrap.Error(ctx, err)
	}

	if hasher.Hash(secret) != d.SecretHash {
		return nil, ErrInvalidSecret
	}

	token, err := s.tokens.Generate(ctx, d)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to its registered device.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Device, error) {
	claims, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	d, err := s.deviceRepo.GetByDeviceID(ctx, claims.DeviceID)
	if err != nil {
		if errors.Is(err, types.ErrDeviceNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return d, nil
}
