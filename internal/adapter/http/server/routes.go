package server

import (
	"context"
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/middleware"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware, mode types.ServiceMode, log logger.Logger) {
	// System Health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux, mode, log)
	setupMetricsRoute(mux)

	switch mode {
	case types.ApiService:
		setupApiRoutes(mux, routes, m)
	case types.CompassService:
		setupCompassRoutes(mux, routes)
	}
}

// setupApiRoutes setups routes for the REST backend
func setupApiRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	mux.HandleFunc("GET /api/", routes.health.Root)

	mux.HandleFunc("GET /api/prayer-times", routes.prayer.Daily)
	mux.HandleFunc("GET /api/prayer-times/monthly", routes.prayer.Monthly)
	mux.HandleFunc("GET /api/prayer-times/next", routes.prayer.Next)

	mux.HandleFunc("GET /api/qibla", routes.qibla.Direction)

	mux.HandleFunc("GET /api/cities/turkey", routes.catalog.TurkishCities)
	mux.HandleFunc("GET /api/cities/world", routes.catalog.WorldCities)
	mux.HandleFunc("GET /api/calculation-methods", routes.catalog.CalculationMethods)

	mux.HandleFunc("POST /api/devices", routes.device.Register)
	mux.HandleFunc("POST /api/devices/token", routes.device.Token)

	mux.Handle("GET /api/settings", m.RequireDevice(routes.settings.Get))
	mux.Handle("POST /api/settings", m.RequireDevice(routes.settings.Upsert))
}

// setupCompassRoutes setups routes for the websocket compass gateway
func setupCompassRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /ws/compass/{device_id}", routes.compass.HandleWS)
}

// setupSwaggerRoutes configures Swagger UI endpoints based on service mode
func setupSwaggerRoutes(mux *http.ServeMux, mode types.ServiceMode, log logger.Logger) {
	var instanceName string

	switch mode {
	case types.ApiService:
		instanceName = "api"
	case types.CompassService:
		instanceName = "compass"
	default:
		log.Warn(wrap.WithAction(context.Background(), "setup swagger routes"), "unknown service mode for swagger setup", "mode", mode)
		return
	}

	// Swagger UI endpoint
	swaggerURL := httpSwagger.InstanceName(instanceName)
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
