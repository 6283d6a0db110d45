package handler

import (
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

const apiVersion = "1.0.0"

type Health struct {
	serviceName string
	log         logger.Logger
}

func NewHealth(serviceName string, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service
// @Tags         Health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
// HealthCheck - returns system information.
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]string{
			"service-name": a.serviceName,
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}

// Root godoc
// @Summary      API Root
// @Description  Returns the service name and version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/ [get]
func (a *Health) Root(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "api_root")

	response := envelope{
		"service": a.serviceName,
		"version": apiVersion,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "api root", err)
		return
	}
}
