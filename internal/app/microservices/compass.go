package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyaskrnz/ezan-uygulamasi/config"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/server"
	wshandler "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/ws"
	repo "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/postgres"
	broker "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/rabbit"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/device"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/qibla"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/settings"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/postgres"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/rabbit"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/trm"
	ws "github.com/ilyaskrnz/ezan-uygulamasi/pkg/wsHub"
)

// CompassService is the websocket gateway that turns magnetometer streams
// into live qibla compass frames.
type CompassService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API
	hub        *ws.ConnectionHub
	broker     *broker.CompassBroker
	gateway    *wshandler.CompassGateway
	cfg        config.Config
	log        logger.Logger
}

func NewCompass(ctx context.Context, cfg config.Config, log logger.Logger) (*CompassService, error) {
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

	hub := ws.NewConnHub(log)
	gateway := wshandler.NewCompassGateway(
		hub,
		qibla.New(),
		deviceService,
		settingsService,
		cfg.Compass.SmoothingAlpha,
		cfg.Compass.ToleranceDegrees,
		log,
	)

	httpServer, err := server.New(cfg, server.Deps{
		Auth:    deviceService,
		Compass: gateway,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &CompassService{
		postgresDB: postgresDB,
		rabbitMQ:   rabbitMQ,
		httpServer: httpServer,
		hub:        hub,
		broker:     compassBroker,
		gateway:    gateway,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *CompassService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)

	// Calibration changes saved over REST reach live sockets through the broker.
	go func() {
		if err := s.broker.ConsumeCalibrationUpdates(ctx, s.gateway.ApplyCalibration); err != nil {
			errCh <- err
		}
	}()

	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "compass service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "compass service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (s *CompassService) close(ctx context.Context) {
	if s.hub != nil {
		s.hub.Close()
	}

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
