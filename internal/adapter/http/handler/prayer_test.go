package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/catalog"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

type fakePrayerService struct {
	lastMethod int
}

func (f *fakePrayerService) Daily(_ context.Context, _ models.GeoPoint, _ string, method int) (*models.PrayerTimes, error) {
	f.lastMethod = method
	return &models.PrayerTimes{}, nil
}

func (f *fakePrayerService) Monthly(_ context.Context, _ models.GeoPoint, _, _, method int) ([]models.MonthlyPrayerDay, error) {
	f.lastMethod = method
	return nil, nil
}

func (f *fakePrayerService) Next(_ context.Context, _ models.GeoPoint, method int) (*models.NextPrayer, error) {
	f.lastMethod = method
	return &models.NextPrayer{}, nil
}

func newPrayerHandler(svc PrayerService) *Prayer {
	return NewPrayer(svc, catalog.New(), logger.InitLogger("prayer-test", logger.LevelError))
}

func TestDailyRejectsUnsupportedMethod(t *testing.T) {
	svc := &fakePrayerService{lastMethod: -1}
	h := newPrayerHandler(svc)

	// 6 is a gap in the method catalog and must not reach the upstream API
	cases := []string{
		"/api/prayer-times?latitude=41&longitude=29&method=6",
		"/api/prayer-times?latitude=41&longitude=29&method=99",
		"/api/prayer-times?latitude=41&longitude=29&method=-1",
	}
	for _, target := range cases {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()

		h.Daily(rec, req)

		if rec.Code != 400 {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
	if svc.lastMethod != -1 {
		t.Errorf("service was called with method %d despite rejection", svc.lastMethod)
	}
}

func TestDailyAcceptsMethodZero(t *testing.T) {
	svc := &fakePrayerService{lastMethod: -1}
	h := newPrayerHandler(svc)

	req := httptest.NewRequest("GET", "/api/prayer-times?latitude=41&longitude=29&method=0", nil)
	rec := httptest.NewRecorder()

	h.Daily(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastMethod != 0 {
		t.Errorf("service method = %d, want 0", svc.lastMethod)
	}
}

func TestMonthlyDefaultsToDiyanetMethod(t *testing.T) {
	svc := &fakePrayerService{lastMethod: -1}
	h := newPrayerHandler(svc)

	req := httptest.NewRequest("GET", "/api/prayer-times/monthly?latitude=41&longitude=29", nil)
	rec := httptest.NewRecorder()

	h.Monthly(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastMethod != models.DefaultCalculationMethod {
		t.Errorf("service method = %d, want default %d", svc.lastMethod, models.DefaultCalculationMethod)
	}
}
