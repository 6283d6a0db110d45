package settings

import (
	"context"
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

type fakeRepo struct {
	rows map[string]*models.DeviceSettings
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*models.DeviceSettings)}
}

func (r *fakeRepo) Get(_ context.Context, deviceID string) (*models.DeviceSettings, error) {
	s, ok := r.rows[deviceID]
	if !ok {
		return nil, types.ErrSettingsNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) Create(_ context.Context, s *models.DeviceSettings) error {
	cp := *s
	r.rows[s.DeviceID] = &cp
	return nil
}

func (r *fakeRepo) Update(_ context.Context, s *models.DeviceSettings) error {
	if _, ok := r.rows[s.DeviceID]; !ok {
		return types.ErrSettingsNotFound
	}
	cp := *s
	r.rows[s.DeviceID] = &cp
	return nil
}

func (r *fakeRepo) UpdateCalibration(_ context.Context, deviceID string, offset float64) error {
	s, ok := r.rows[deviceID]
	if !ok {
		return types.ErrSettingsNotFound
	}
	s.CalibrationOffsetDegrees = offset
	return nil
}

type fakePublisher struct {
	published []models.CalibrationUpdateMessage
}

func (p *fakePublisher) PublishCalibrationUpdate(_ context.Context, msg models.CalibrationUpdateMessage) error {
	p.published = append(p.published, msg)
	return nil
}

type noTx struct{}

func (noTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo SettingsRepo, pub Publisher) *Service {
	log := logger.InitLogger("settings-test", logger.LevelError)
	return New(repo, pub, noTx{}, log)
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestGetReturnsDefaultsForUnknownDevice(t *testing.T) {
	svc := newService(newFakeRepo(), &fakePublisher{})

	got, err := svc.Get(context.Background(), "fresh-device")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Language != models.DefaultLanguage {
		t.Errorf("language = %q, want %q", got.Language, models.DefaultLanguage)
	}
	if got.Theme != models.DefaultTheme {
		t.Errorf("theme = %q, want %q", got.Theme, models.DefaultTheme)
	}
	if got.CalculationMethod != models.DefaultCalculationMethod {
		t.Errorf("method = %d, want %d", got.CalculationMethod, models.DefaultCalculationMethod)
	}
	if !got.NotificationEnabled {
		t.Error("notifications must default to enabled")
	}
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakePublisher{})
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{
		Language: "en",
		Theme:    "light",
	})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if first.Language != "en" || first.Theme != "light" {
		t.Errorf("created settings = %q/%q, want en/light", first.Language, first.Theme)
	}
	// untouched fields keep defaults
	if first.CalculationMethod != models.DefaultCalculationMethod {
		t.Errorf("method = %d, want default %d", first.CalculationMethod, models.DefaultCalculationMethod)
	}

	second, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{
		CalculationMethod: intPtr(3),
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if second.CalculationMethod != 3 {
		t.Errorf("method = %d, want 3", second.CalculationMethod)
	}
	if second.Language != "en" {
		t.Errorf("language = %q, update must not reset earlier fields", second.Language)
	}
}

func TestUpsertKeepsOmittedNotificationFlag(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakePublisher{})
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{
		NotificationEnabled: boolPtr(true),
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// a later update that only changes the city must not flip notifications off
	got, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{City: "Istanbul"})
	if err != nil {
		t.Fatalf("city-only Upsert: %v", err)
	}
	if !got.NotificationEnabled {
		t.Error("notifications disabled by an update that omitted the flag")
	}
	if got.City != "Istanbul" {
		t.Errorf("city = %q, want Istanbul", got.City)
	}

	disabled, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{
		NotificationEnabled: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("disable Upsert: %v", err)
	}
	if disabled.NotificationEnabled {
		t.Error("explicit notification_enabled=false was not applied")
	}
}

func TestUpsertStoresMethodZero(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakePublisher{})
	ctx := context.Background()

	// method 0 (Shia Ithna-Ashari) is a real method id, not "absent"
	got, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{
		CalculationMethod: intPtr(0),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if got.CalculationMethod != 0 {
		t.Errorf("method = %d, want 0", got.CalculationMethod)
	}

	// and an update omitting the method keeps it at 0
	kept, err := svc.Upsert(ctx, "dev-1", &models.SettingsUpdate{Language: "en"})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if kept.CalculationMethod != 0 {
		t.Errorf("method = %d after omitting field, want 0", kept.CalculationMethod)
	}
}

func TestSetCalibrationPersistsAndPublishes(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{}
	svc := newService(repo, pub)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "dev-2", &models.SettingsUpdate{}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := svc.SetCalibration(ctx, "dev-2", -12.5, "rest"); err != nil {
		t.Fatalf("SetCalibration: %v", err)
	}

	stored, err := svc.Get(ctx, "dev-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.CalibrationOffsetDegrees != -12.5 {
		t.Errorf("offset = %g, want -12.5", stored.CalibrationOffsetDegrees)
	}

	if len(pub.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.published))
	}
	msg := pub.published[0]
	if msg.DeviceID != "dev-2" || msg.OffsetDegrees != -12.5 || msg.Source != "rest" {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestSetCalibrationCreatesRowForUnknownDevice(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakePublisher{})

	if err := svc.SetCalibration(context.Background(), "dev-3", 7, "stream"); err != nil {
		t.Fatalf("SetCalibration: %v", err)
	}

	stored, err := svc.Get(context.Background(), "dev-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.CalibrationOffsetDegrees != 7 {
		t.Errorf("offset = %g, want 7", stored.CalibrationOffsetDegrees)
	}
}
