package handler

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/qibla"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

func TestQiblaDirectionIstanbul(t *testing.T) {
	h := NewQibla(qibla.New(), logger.InitLogger("qibla-test", logger.LevelError))

	req := httptest.NewRequest("GET", "/api/qibla?latitude=41.0082&longitude=28.9784", nil)
	rec := httptest.NewRecorder()

	h.Direction(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var body struct {
		QiblaDirection float64 `json:"qibla_direction"`
		DistanceKm     float64 `json:"distance_km"`
		Kaaba          struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"kaaba"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if math.Abs(body.QiblaDirection-151.6) > 1 {
		t.Errorf("qibla_direction: got %.2f, want ~151.6", body.QiblaDirection)
	}
	if math.Abs(body.DistanceKm-2405.07) > 5 {
		t.Errorf("distance_km: got %.2f, want ~2405", body.DistanceKm)
	}
	if body.Kaaba.Latitude != 21.4225 || body.Kaaba.Longitude != 39.8262 {
		t.Errorf("kaaba coordinates: got %v, %v", body.Kaaba.Latitude, body.Kaaba.Longitude)
	}
}

func TestQiblaDirectionRejectsBadCoordinates(t *testing.T) {
	h := NewQibla(qibla.New(), logger.InitLogger("qibla-test", logger.LevelError))

	cases := []string{
		"/api/qibla",
		"/api/qibla?latitude=91&longitude=0",
		"/api/qibla?latitude=41&longitude=181",
		"/api/qibla?latitude=abc&longitude=28",
	}
	for _, target := range cases {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()

		h.Direction(rec, req)

		if rec.Code != 400 {
			t.Errorf("%s: status got %d, want 400", target, rec.Code)
		}
	}
}
