package prayer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/aladhan"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

var istanbul = models.GeoPoint{Latitude: 41.0082, Longitude: 28.9784}

// fakeAPI serves canned timings keyed by date ("" means today).
type fakeAPI struct {
	byDate map[string]*aladhan.TimingsData
	err    error
}

func (f *fakeAPI) Timings(_ context.Context, _, _ float64, date string, _ int) (*aladhan.TimingsData, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.byDate[date]
	if !ok {
		return nil, errors.New("no fixture for date " + date)
	}
	return d, nil
}

func (f *fakeAPI) Calendar(_ context.Context, _, _ float64, _, _, _ int) ([]aladhan.TimingsData, error) {
	return nil, f.err
}

func day(fajr, dhuhr, asr, maghrib, isha string) *aladhan.TimingsData {
	d := &aladhan.TimingsData{}
	d.Timings.Fajr = fajr
	d.Timings.Sunrise = "06:12"
	d.Timings.Dhuhr = dhuhr
	d.Timings.Asr = asr
	d.Timings.Maghrib = maghrib
	d.Timings.Isha = isha
	d.Date.Readable = "29 Aug 2026"
	d.Meta.Timezone = "UTC"
	d.Meta.Method.Name = "Diyanet"
	return d
}

func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = old })
}

func newService(api AladhanAPI) *Service {
	return New(api, logger.InitLogger("test", logger.LevelError))
}

func TestNext_MidDay(t *testing.T) {
	api := &fakeAPI{byDate: map[string]*aladhan.TimingsData{
		"": day("04:31", "13:08", "16:49", "19:54", "21:27"),
	}}
	s := newService(api)

	pinNow(t, time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC))

	next, err := s.Next(context.Background(), istanbul, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Name != "Asr" {
		t.Fatalf("expected Asr, got %s", next.Name)
	}
	want := 2*time.Hour + 49*time.Minute
	if next.Remaining != want {
		t.Fatalf("expected remaining %v, got %v", want, next.Remaining)
	}
}

func TestNext_SunriseIsNeverTheTarget(t *testing.T) {
	api := &fakeAPI{byDate: map[string]*aladhan.TimingsData{
		"": day("04:31", "13:08", "16:49", "19:54", "21:27"),
	}}
	s := newService(api)

	// Between Fajr and Sunrise: target must be Dhuhr, not Sunrise.
	pinNow(t, time.Date(2026, 8, 29, 5, 0, 0, 0, time.UTC))

	next, err := s.Next(context.Background(), istanbul, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != "Dhuhr" {
		t.Fatalf("expected Dhuhr, got %s", next.Name)
	}
}

func TestNext_RollsOverToTomorrowsFajr(t *testing.T) {
	api := &fakeAPI{byDate: map[string]*aladhan.TimingsData{
		"":           day("04:31", "13:08", "16:49", "19:54", "21:27"),
		"30-08-2026": day("04:33", "13:07", "16:48", "19:52", "21:25"),
	}}
	s := newService(api)

	pinNow(t, time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC))

	next, err := s.Next(context.Background(), istanbul, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Name != "Fajr" {
		t.Fatalf("expected Fajr rollover, got %s", next.Name)
	}
	want := 6*time.Hour + 33*time.Minute
	if next.Remaining != want {
		t.Fatalf("expected remaining %v, got %v", want, next.Remaining)
	}
}

func TestNext_BeforeFajr(t *testing.T) {
	api := &fakeAPI{byDate: map[string]*aladhan.TimingsData{
		"": day("04:31", "13:08", "16:49", "19:54", "21:27"),
	}}
	s := newService(api)

	pinNow(t, time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC))

	next, err := s.Next(context.Background(), istanbul, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != "Fajr" || next.Remaining != 91*time.Minute {
		t.Fatalf("expected Fajr in 1h31m, got %s in %v", next.Name, next.Remaining)
	}
}

func TestDaily_TrimsTimezoneSuffix(t *testing.T) {
	d := day("04:31 (+03)", "13:08 (+03)", "16:49 (+03)", "19:54 (+03)", "21:27 (+03)")
	api := &fakeAPI{byDate: map[string]*aladhan.TimingsData{"": d}}
	s := newService(api)

	times, err := s.Daily(context.Background(), istanbul, "", 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if times.Fajr != "04:31" || times.Isha != "21:27" {
		t.Fatalf("expected suffix trimmed, got %+v", times)
	}
}

func TestDaily_InvalidCoordinate(t *testing.T) {
	s := newService(&fakeAPI{})

	_, err := s.Daily(context.Background(), models.GeoPoint{Latitude: 99, Longitude: 0}, "", 13)
	if !errors.Is(err, types.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestMonthly_RejectsBadMonth(t *testing.T) {
	s := newService(&fakeAPI{})

	if _, err := s.Monthly(context.Background(), istanbul, 2026, 13, 13); err == nil {
		t.Fatal("expected error for month 13")
	}
}
