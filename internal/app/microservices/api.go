package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyaskrnz/ezan-uygulamasi/config"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/aladhan"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/handler"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/server"
	repo "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/postgres"
	broker "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/rabbit"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/catalog"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/device"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/prayer"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/qibla"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/settings"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/postgres"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/rabbit"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/trm"
)

// ApiService is the REST backend: prayer times, qibla, catalogs, devices,
// settings.
type ApiService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API
	cfg        config.Config
	log        logger.Logger
}

func NewApi(ctx context.Context, cfg config.Config, log logger.Logger) (*ApiService, error) {
	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	rabbitMQ, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
	if err != nil {
		log.Error(ctx, "Failed to setup rabbitmq", err)
		return nil, err
	}

	compassBroker := broker.NewCompassBroker(rabbitMQ, log)
	if err := compassBroker.Setup(ctx); err != nil {
		log.Error(ctx, "Failed to declare rabbitmq topology", err)
		return nil, err
	}

	txManager := trm.New(postgresDB.Pool)

	deviceRepo := repo.NewDeviceRepo(postgresDB.Pool)
	settingsRepo := repo.NewSettingsRepo(postgresDB.Pool)

	tokenService := device.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, log)
	deviceService := device.New(deviceRepo, tokenService, log)
	settingsService := settings.New(settingsRepo, compassBroker, txManager, log)

	aladhanClient := aladhan.New(cfg.Aladhan.BaseURL, cfg.Aladhan.Timeout)
	prayerService := prayer.New(aladhanClient, log)

	qiblaCalc := qibla.New()

	httpServer, err := server.New(cfg, server.Deps{
		Prayer:   prayerService,
		Qibla:    handler.NewQibla(qiblaCalc, log),
		Catalog:  catalog.New(),
		Device:   deviceService,
		Settings: settingsService,
		Auth:     deviceService,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &ApiService{
		postgresDB: postgresDB,
		rabbitMQ:   rabbitMQ,
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *ApiService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "api service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "api service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (s *ApiService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close rabbitmq connection", "error", err.Error())
		}
	}

	if s.postgresDB != nil && s.postgresDB.Pool != nil {
		s.postgresDB.Pool.Close()
	}
}
