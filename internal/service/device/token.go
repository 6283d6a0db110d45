package device

import (
	"context"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and validates device access tokens. Devices have no
// session to revoke, so only short-lived access tokens are issued and the
// client re-authenticates with its secret when one expires.
type TokenService struct {
	AccessTTL time.Duration
	secret    string
	log       logger.Logger
}

func NewTokenService(secret string, accessTTL time.Duration, log logger.Logger) *TokenService {
	return &TokenService{
		AccessTTL: accessTTL,
		secret:    secret,
		log:       log,
	}
}

// Generate creates a new access token for the given device.
func (s *TokenService) Generate(ctx context.Context, d *models.Device) (*models.DeviceToken, error) {
	ctx = wrap.WithAction(ctx, "generate_token")

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.AccessTTL)

	claims := jwt.MapClaims{
		"typ":       "access",
		"jti":       uuid.New().String(),
		"device_id": d.DeviceID,
		"platform":  d.Platform,
		"iat":       issuedAt.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.DeviceToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate validates the given JWT token string, returning the device claims if valid.
func (s *TokenService) Validate(ctx context.Context, token string) (*models.DeviceClaims, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	parsedToken, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	mc, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	if typ, _ := mc["typ"].(string); typ != "access" {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	deviceID, _ := mc["device_id"].(string)
	if deviceID == "" {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	tokenID, _ := mc["jti"].(string)
	if tokenID == "" {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	expFloat, ok := mc["exp"].(float64)
	if !ok {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().UTC().After(expTime) {
		return nil, wrap.Error(ctx, ErrExpToken)
	}

	platform, _ := mc["platform"].(string)

	return &models.DeviceClaims{
		TokenID:   tokenID,
		DeviceID:  deviceID,
		Platform:  platform,
		ExpiresAt: expTime,
	}, nil
}
