package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Aladhan  AladhanConfig
		Compass  CompassConfig
		Services ServicesConfig
		Auth     Auth
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"ezan_user"`
		Password string `env:"DATABASE_PASSWORD" default:"ezan_pass"`
		Database string `env:"DATABASE_DATABASE" default:"ezan_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	// AladhanConfig configures the upstream prayer times API.
	AladhanConfig struct {
		BaseURL       string        `env:"ALADHAN_BASE_URL" default:"https://api.aladhan.com"`
		Timeout       time.Duration `env:"ALADHAN_TIMEOUT" default:"10s"`
		DefaultMethod int           `env:"ALADHAN_DEFAULT_METHOD" default:"13"`
	}

	// CompassConfig tunes the heading tracker defaults used by the gateway.
	CompassConfig struct {
		SmoothingAlpha   float64 `env:"COMPASS_SMOOTHING_ALPHA" default:"0.15"`
		ToleranceDegrees float64 `env:"COMPASS_TOLERANCE_DEGREES" default:"10"`
	}

	ServicesConfig struct {
		ApiService     string `env:"SERVICES_API_SERVICE" default:"3000"`
		CompassService string `env:"SERVICES_COMPASS_SERVICE" default:"3001"`
	}

	Auth struct {
		AccessTokenTTL time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"720h"`
		JWTSecret      string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}
