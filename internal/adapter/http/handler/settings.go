package handler

import (
	"context"
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/handler/dto"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
)

type Settings struct {
	service SettingsService
	l       logger.Logger
}

type SettingsService interface {
	Get(ctx context.Context, deviceID string) (*models.DeviceSettings, error)
	Upsert(ctx context.Context, deviceID string, incoming *models.SettingsUpdate) (*models.DeviceSettings, error)
	SetCalibration(ctx context.Context, deviceID string, offsetDegrees float64, source string) error
}

func NewSettings(service SettingsService, l logger.Logger) *Settings {
	return &Settings{
		service: service,
		l:       l,
	}
}

// Get godoc
// @Summary      Get device settings
// @Description  Returns stored settings for the authenticated device, or defaults
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.DeviceSettings
// @Router       /api/settings [get]
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "settings_get")

	d := models.DeviceFromContext(ctx)
	if d == nil {
		errorResponse(w, http.StatusUnauthorized, "authorization required")
		return
	}

	settings, err := h.service.Get(ctx, d.DeviceID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load settings", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"settings": settings}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Upsert godoc
// @Summary      Save device settings
// @Description  Creates or updates settings for the authenticated device
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.SettingsReq  true  "Settings payload"
// @Success      200  {object}  models.DeviceSettings
// @Router       /api/settings [post]
func (h *Settings) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "settings_upsert")

	d := models.DeviceFromContext(ctx)
	if d == nil {
		errorResponse(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req dto.SettingsReq
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	saved, err := h.service.Upsert(ctx, d.DeviceID, req.ToUpdate())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to save settings", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	// A calibration offset in the payload also fans out to live compass sessions.
	if req.CalibrationOffsetDegrees != nil {
		if err := h.service.SetCalibration(ctx, d.DeviceID, *req.CalibrationOffsetDegrees, "rest"); err != nil {
			h.l.Error(wrap.ErrorCtx(ctx, err), "failed to save calibration offset", err)
			errorResponse(w, GetCode(err), err.Error())
			return
		}
		metrics.CalibrationEventsTotal.WithLabelValues("api", "rest").Inc()
		saved.CalibrationOffsetDegrees = *req.CalibrationOffsetDegrees
	}

	if err := writeJSON(w, http.StatusOK, envelope{"settings": saved}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "settings saved", "device_id", d.DeviceID)
}
