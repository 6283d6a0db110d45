package prayer

import (
	"context"
	"fmt"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

// prayerOrder is the countdown order. Sunrise is displayed in the schedule
// but is not a prayer, so it is never the countdown target.
var prayerOrder = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Next derives the upcoming prayer and the remaining time until it.
// After Isha it rolls over to tomorrow's Fajr.
func (s *Service) Next(ctx context.Context, observer models.GeoPoint, method int) (*models.NextPrayer, error) {
	const op = "PrayerService.Next"

	today, err := s.Daily(ctx, observer, "", method)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(today.Timezone)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: unknown timezone %q: %w", op, today.Timezone, err))
	}

	now := timeNow().In(loc)

	if next, ok := nextOfDay(today, now, now); ok {
		return next, nil
	}

	// All of today's prayers have passed: tomorrow's Fajr.
	tomorrow := now.AddDate(0, 0, 1)
	times, err := s.Daily(ctx, observer, tomorrow.Format("02-01-2006"), method)
	if err != nil {
		return nil, err
	}

	at, err := clockOn(times.Fajr, tomorrow, loc)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return &models.NextPrayer{
		Name:      "Fajr",
		At:        at,
		Remaining: at.Sub(now),
	}, nil
}

// nextOfDay scans a day's timings for the first prayer after now.
// day anchors the calendar date the clock strings belong to.
func nextOfDay(times *models.PrayerTimes, day, now time.Time) (*models.NextPrayer, bool) {
	clocks := map[string]string{
		"Fajr":    times.Fajr,
		"Dhuhr":   times.Dhuhr,
		"Asr":     times.Asr,
		"Maghrib": times.Maghrib,
		"Isha":    times.Isha,
	}

	for _, name := range prayerOrder {
		at, err := clockOn(clocks[name], day, now.Location())
		if err != nil {
			// A malformed clock string skips that prayer rather than
			// failing the whole countdown.
			continue
		}
		if at.After(now) {
			return &models.NextPrayer{
				Name:      name,
				At:        at,
				Remaining: at.Sub(now),
			}, true
		}
	}

	return nil, false
}

// clockOn combines an "HH:MM" string with a calendar day in the given zone.
func clockOn(clock string, day time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", trimClock(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("bad clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
