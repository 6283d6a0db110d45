package handler

import (
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/qibla"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
)

type Qibla struct {
	calc qibla.Calculator
	l    logger.Logger
}

func NewQibla(calc qibla.Calculator, l logger.Logger) *Qibla {
	return &Qibla{
		calc: calc,
		l:    l,
	}
}

// Direction godoc
// @Summary      Qibla direction
// @Description  Returns the great-circle bearing and distance to the Kaaba
// @Tags         Qibla
// @Produce      json
// @Param        latitude   query  number  true  "Latitude"
// @Param        longitude  query  number  true  "Longitude"
// @Success      200  {object}  models.BearingResult
// @Router       /api/qibla [get]
func (h *Qibla) Direction(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "qibla_direction")

	observer, err := readCoordinates(r)
	if err != nil {
		metrics.QiblaRequestsTotal.WithLabelValues("api", "invalid").Inc()
		h.l.Warn(ctx, "invalid coordinates", "error", err.Error())
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.calc.ToKaaba(observer)
	if err != nil {
		metrics.QiblaRequestsTotal.WithLabelValues("api", "error").Inc()
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute qibla bearing", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	metrics.QiblaRequestsTotal.WithLabelValues("api", "ok").Inc()

	response := envelope{
		"latitude":        observer.Latitude,
		"longitude":       observer.Longitude,
		"qibla_direction": result.BearingDegrees,
		"distance_km":     result.DistanceKm,
		"kaaba": map[string]float64{
			"latitude":  qibla.KaabaLatitude,
			"longitude": qibla.KaabaLongitude,
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
