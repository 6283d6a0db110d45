package handler

import (
	"context"
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/handler/dto"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
)

type Device struct {
	service DeviceService
	l       logger.Logger
}

type DeviceService interface {
	Register(ctx context.Context, deviceID, secret, platform string) (*models.Device, error)
	IssueToken(ctx context.Context, deviceID, secret string) (*models.DeviceToken, error)
}

func NewDevice(service DeviceService, l logger.Logger) *Device {
	return &Device{
		service: service,
		l:       l,
	}
}

// Register godoc
// @Summary      Register device
// @Description  Registers a new device and returns an access token
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        request  body  dto.RegisterDeviceReq  true  "Device registration payload"
// @Success      201  {object}  models.DeviceToken
// @Router       /api/devices [post]
func (h *Device) Register(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "register_device")

	var req dto.RegisterDeviceReq
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

	d, err := h.service.Register(ctx, req.DeviceID, req.Secret, req.Platform)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register device", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	token, err := h.service.IssueToken(ctx, req.DeviceID, req.Secret)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to issue token for new device", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"device_id":  d.DeviceID,
		"platform":   d.Platform,
		"token":      token.Token,
		"expires_at": token.ExpiresAt,
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "device registered successfully", "device_id", d.DeviceID)
}

// Token godoc
// @Summary      Issue device token
// @Description  Re-issues an access token for a registered device
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        request  body  dto.DeviceTokenReq  true  "Device credentials"
// @Success      200  {object}  models.DeviceToken
// @Router       /api/devices/token [post]
func (h *Device) Token(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "issue_device_token")

	var req dto.DeviceTokenReq
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

	token, err := h.service.IssueToken(ctx, req.DeviceID, req.Secret)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to issue device token", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"token":      token.Token,
		"expires_at": token.ExpiresAt,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
