package aladhan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
)

const timingsBody = `{
	"code": 200,
	"data": {
		"timings": {
			"Fajr": "04:31", "Sunrise": "06:12", "Dhuhr": "13:08",
			"Asr": "16:49", "Maghrib": "19:54", "Isha": "21:27"
		},
		"date": {
			"readable": "29 Aug 2026",
			"hijri": {"day": "16", "year": "1448", "month": {"en": "Rabi al-Awwal", "ar": "ربيع الأول"}},
			"gregorian": {"date": "29-08-2026"}
		},
		"meta": {"timezone": "Europe/Istanbul", "method": {"name": "Diyanet İşleri Başkanlığı, Turkey"}}
	}
}`

func TestTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/timings/29-08-2026" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "41.0082" || q.Get("longitude") != "28.9784" || q.Get("method") != "13" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(timingsBody))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	data, err := c.Timings(context.Background(), 41.0082, 28.9784, "29-08-2026", 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Timings.Fajr != "04:31" || data.Timings.Isha != "21:27" {
		t.Fatalf("unexpected timings: %+v", data.Timings)
	}
	if data.Meta.Timezone != "Europe/Istanbul" {
		t.Fatalf("unexpected timezone %q", data.Meta.Timezone)
	}
	if data.Date.Hijri.Month.En != "Rabi al-Awwal" {
		t.Fatalf("unexpected hijri month %q", data.Date.Hijri.Month.En)
	}
}

func TestTimings_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Timings(context.Background(), 41, 29, "", 13)
	if !errors.Is(err, types.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/calendar/2026/8" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"code":200,"data":[` + `{"timings":{"Fajr":"04:31 (+03)","Sunrise":"06:12 (+03)","Dhuhr":"13:08 (+03)","Asr":"16:49 (+03)","Maghrib":"19:54 (+03)","Isha":"21:27 (+03)"},"date":{"readable":"01 Aug 2026","hijri":{"day":"18","year":"1448","month":{"en":"Safar","ar":"صفر"}},"gregorian":{"date":"01-08-2026"}},"meta":{"timezone":"Europe/Istanbul","method":{"name":"Diyanet"}}}` + `]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	days, err := c.Calendar(context.Background(), 41.0082, 28.9784, 2026, 8, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Timings.Fajr != "04:31 (+03)" {
		t.Fatalf("unexpected fajr %q", days[0].Timings.Fajr)
	}
}
