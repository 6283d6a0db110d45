package prayer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/aladhan"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
)

// AladhanAPI is the upstream prayer times source.
type AladhanAPI interface {
	Timings(ctx context.Context, latitude, longitude float64, date string, method int) (*aladhan.TimingsData, error)
	Calendar(ctx context.Context, latitude, longitude float64, year, month, method int) ([]aladhan.TimingsData, error)
}

type Service struct {
	api AladhanAPI
	log logger.Logger
}

func New(api AladhanAPI, log logger.Logger) *Service {
	return &Service{
		api: api,
		log: log,
	}
}

// Daily returns one day of prayer times for the given coordinates.
// date is DD-MM-YYYY; empty means today.
func (s *Service) Daily(ctx context.Context, observer models.GeoPoint, date string, method int) (*models.PrayerTimes, error) {
	const op = "PrayerService.Daily"

	if !observer.Valid() {
		return nil, types.ErrInvalidCoordinate
	}

	data, err := s.api.Timings(ctx, observer.Latitude, observer.Longitude, date, method)
	metrics.RecordPrayerTimesFetch("api", "daily", err)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return toPrayerTimes(data), nil
}

// Monthly returns the whole month's calendar for the given coordinates.
func (s *Service) Monthly(ctx context.Context, observer models.GeoPoint, year, month, method int) ([]models.MonthlyPrayerDay, error) {
	const op = "PrayerService.Monthly"

	if !observer.Valid() {
		return nil, types.ErrInvalidCoordinate
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%s: month must be 1..12, got %d", op, month)
	}

	days, err := s.api.Calendar(ctx, observer.Latitude, observer.Longitude, year, month, method)
	metrics.RecordPrayerTimesFetch("api", "monthly", err)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	out := make([]models.MonthlyPrayerDay, 0, len(days))
	for _, d := range days {
		out = append(out, models.MonthlyPrayerDay{
			Date:      d.Date.Readable,
			Gregorian: d.Date.Gregorian.Date,
			Hijri:     fmt.Sprintf("%s %s", d.Date.Hijri.Day, d.Date.Hijri.Month.En),
			Fajr:      trimClock(d.Timings.Fajr),
			Sunrise:   trimClock(d.Timings.Sunrise),
			Dhuhr:     trimClock(d.Timings.Dhuhr),
			Asr:       trimClock(d.Timings.Asr),
			Maghrib:   trimClock(d.Timings.Maghrib),
			Isha:      trimClock(d.Timings.Isha),
		})
	}

	return out, nil
}

func toPrayerTimes(data *aladhan.TimingsData) *models.PrayerTimes {
	hijri := data.Date.Hijri
	return &models.PrayerTimes{
		Fajr:        trimClock(data.Timings.Fajr),
		Sunrise:     trimClock(data.Timings.Sunrise),
		Dhuhr:       trimClock(data.Timings.Dhuhr),
		Asr:         trimClock(data.Timings.Asr),
		Maghrib:     trimClock(data.Timings.Maghrib),
		Isha:        trimClock(data.Timings.Isha),
		Date:        data.Date.Readable,
		HijriDate:   fmt.Sprintf("%s %s %s", hijri.Day, hijri.Month.En, hijri.Year),
		HijriDateAr: fmt.Sprintf("%s %s %s", hijri.Day, hijri.Month.Ar, hijri.Year),
		Timezone:    data.Meta.Timezone,
		Method:      data.Meta.Method.Name,
	}
}

// trimClock drops the timezone suffix Aladhan appends to calendar entries,
// e.g. "04:31 (+03)" -> "04:31".
func trimClock(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// Plumb time.Now through a variable so tests can pin it.
var timeNow = time.Now
