package device

import (
	"context"
	"testing"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
)

func testDevice() *models.Device {
	return &models.Device{
		ID:       uuid.New(),
		DeviceID: "test-device-1",
		Platform: "android",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	log := logger.InitLogger("token-test", logger.LevelError)
	svc := NewTokenService("test-secret", time.Hour, log)
	ctx := context.Background()

	issued, err := svc.Generate(ctx, testDevice())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if issued.Token == "" {
		t.Fatal("empty token")
	}
	if time.Until(issued.ExpiresAt) <= 0 {
		t.Fatal("token already expired at issue time")
	}

	claims, err := svc.Validate(ctx, issued.Token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.DeviceID != "test-device-1" {
		t.Errorf("device_id = %q, want test-device-1", claims.DeviceID)
	}
	if claims.Platform != "android" {
		t.Errorf("platform = %q, want android", claims.Platform)
	}
	if claims.TokenID == "" {
		t.Error("missing jti")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	log := logger.InitLogger("token-test", logger.LevelError)
	ctx := context.Background()

	issued, err := NewTokenService("secret-a", time.Hour, log).Generate(ctx, testDevice())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour, log).Validate(ctx, issued.Token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	log := logger.InitLogger("token-test", logger.LevelError)
	svc := NewTokenService("test-secret", -time.Minute, log)
	ctx := context.Background()

	issued, err := svc.Generate(ctx, testDevice())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Validate(ctx, issued.Token); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	log := logger.InitLogger("token-test", logger.LevelError)
	svc := NewTokenService("test-secret", time.Hour, log)

	if _, err := svc.Validate(context.Background(), "not.a.jwt"); err == nil {
		t.Fatal("garbage input must not validate")
	}
}
