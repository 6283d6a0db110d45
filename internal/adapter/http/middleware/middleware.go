package middleware

import (
	"context"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

type (
	// DeviceAuth resolves a bearer token to its registered device.
	DeviceAuth interface {
		Authenticate(ctx context.Context, token string) (*models.Device, error)
	}

	Middleware struct {
		auth DeviceAuth
		log  logger.Logger
	}
)

func NewMiddleware(auth DeviceAuth, log logger.Logger) *Middleware {
	return &Middleware{
		auth: auth,
		log:  log,
	}
}
