package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/config"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/handler"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/middleware"
	wshandler "github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/ws"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health   *handler.Health
	prayer   *handler.Prayer
	qibla    *handler.Qibla
	catalog  *handler.Catalog
	device   *handler.Device
	settings *handler.Settings
	compass  *wshandler.CompassGateway
}

// Deps carries the services each mode wires into its handlers.
type Deps struct {
	Prayer   handler.PrayerService
	Qibla    *handler.Qibla
	Catalog  handler.CatalogService
	Device   handler.DeviceService
	Settings handler.SettingsService
	Auth     middleware.DeviceAuth
	Compass  *wshandler.CompassGateway
}

func New(cfg config.Config, deps Deps, log logger.Logger) (*API, error) {
	if deps.Auth == nil {
		return nil, errors.New("device auth is required")
	}

	var addr string
	handlers := &handlers{
		health: handler.NewHealth(string(cfg.Mode), log),
	}

	switch cfg.Mode {
	case types.ApiService:
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.ApiService)
		handlers.prayer = handler.NewPrayer(deps.Prayer, deps.Catalog, log)
		handlers.qibla = deps.Qibla
		handlers.catalog = handler.NewCatalog(deps.Catalog, log)
		handlers.device = handler.NewDevice(deps.Device, log)
		handlers.settings = handler.NewSettings(deps.Settings, log)
	case types.CompassService:
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.CompassService)
		handlers.compass = deps.Compass
	default:
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	mid := middleware.NewMiddleware(deps.Auth, log)

	api := &API{
		mode: cfg.Mode,

		mux:    http.NewServeMux(),
		routes: handlers,
		m:      mid,
		addr:   addr,
		cfg:    cfg,
		log:    log,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	setupRoutes(api.mux, api.routes, api.m, api.mode, log)

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr, "mode", a.mode)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	chain := a.m.Metrics(string(a.mode))(a.mux)
	return a.m.Recover(a.m.Logging(a.m.RequestID(a.m.Auth(chain))))
}
