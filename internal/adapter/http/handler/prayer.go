package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

type Prayer struct {
	service PrayerService
	methods MethodValidator
	l       logger.Logger
}

type PrayerService interface {
	Daily(ctx context.Context, observer models.GeoPoint, date string, method int) (*models.PrayerTimes, error)
	Monthly(ctx context.Context, observer models.GeoPoint, year, month, method int) ([]models.MonthlyPrayerDay, error)
	Next(ctx context.Context, observer models.GeoPoint, method int) (*models.NextPrayer, error)
}

// MethodValidator reports whether a calculation method id is in the supported
// catalog. Unknown ids are rejected here instead of being proxied upstream.
type MethodValidator interface {
	ValidMethod(id int) bool
}

func NewPrayer(service PrayerService, methods MethodValidator, l logger.Logger) *Prayer {
	return &Prayer{
		service: service,
		methods: methods,
		l:       l,
	}
}

// readMethod parses the optional method query parameter and checks it against
// the catalog of supported calculation methods.
func (h *Prayer) readMethod(r *http.Request) (int, error) {
	method, err := readInt(r, "method", models.DefaultCalculationMethod)
	if err != nil {
		return 0, err
	}
	if !h.methods.ValidMethod(method) {
		return 0, fmt.Errorf("unsupported calculation method: %d", method)
	}
	return method, nil
}

// Daily godoc
// @Summary      Daily prayer times
// @Description  Returns the prayer times for a location and date
// @Tags         Prayer
// @Produce      json
// @Param        latitude   query  number  true   "Latitude"
// @Param        longitude  query  number  true   "Longitude"
// @Param        date       query  string  false  "Date in DD-MM-YYYY format, defaults to today"
// @Param        method     query  int     false  "Calculation method, defaults to 13 (Diyanet)"
// @Success      200  {object}  models.PrayerTimes
// @Router       /api/prayer-times [get]
func (h *Prayer) Daily(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "prayer_times_daily")

	observer, err := readCoordinates(r)
	if err != nil {
		h.l.Warn(ctx, "invalid coordinates", "error", err.Error())
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("02-01-2006")
	}

	method, err := h.readMethod(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	times, err := h.service.Daily(ctx, observer, date, method)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch daily prayer times", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"prayer_times": times}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Monthly godoc
// @Summary      Monthly prayer times
// @Description  Returns per-day prayer times for a month
// @Tags         Prayer
// @Produce      json
// @Param        latitude   query  number  true   "Latitude"
// @Param        longitude  query  number  true   "Longitude"
// @Param        month      query  int     false  "Month 1-12, defaults to current"
// @Param        year       query  int     false  "Year, defaults to current"
// @Param        method     query  int     false  "Calculation method, defaults to 13 (Diyanet)"
// @Success      200  {array}  models.MonthlyPrayerDay
// @Router       /api/prayer-times/monthly [get]
func (h *Prayer) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "prayer_times_monthly")

	observer, err := readCoordinates(r)
	if err != nil {
		h.l.Warn(ctx, "invalid coordinates", "error", err.Error())
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	month, err := readInt(r, "month", int(now.Month()))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	year, err := readInt(r, "year", now.Year())
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	method, err := h.readMethod(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	days, err := h.service.Monthly(ctx, observer, year, month, method)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch monthly prayer times", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"year":  year,
		"month": month,
		"days":  days,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Next godoc
// @Summary      Next prayer
// @Description  Returns the upcoming prayer and remaining time
// @Tags         Prayer
// @Produce      json
// @Param        latitude   query  number  true   "Latitude"
// @Param        longitude  query  number  true   "Longitude"
// @Param        method     query  int     false  "Calculation method, defaults to 13 (Diyanet)"
// @Success      200  {object}  models.NextPrayer
// @Router       /api/prayer-times/next [get]
func (h *Prayer) Next(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "prayer_times_next")

	observer, err := readCoordinates(r)
	if err != nil {
		h.l.Warn(ctx, "invalid coordinates", "error", err.Error())
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	method, err := h.readMethod(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	next, err := h.service.Next(ctx, observer, method)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to derive next prayer", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"name":              next.Name,
		"at":                next.At,
		"remaining_seconds": int(next.Remaining.Seconds()),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
