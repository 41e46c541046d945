package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile   string        `yaml:"log-file" env:"TTT_LOG_FILE"`
	BotDelay  time.Duration `yaml:"bot-delay" env:"TTT_BOT_DELAY" env-default:"500ms" validate:"gte=0s,lte=10s"`
	Telemetry Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"TTT_OTEL_ENDPOINT" validate:"omitempty,hostname_port"`
	ServiceName string `yaml:"service-name" env:"TTT_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Load reads the YAML file at path when given, then the environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TelemetryEnabled reports whether an OTLP collector is configured.
func (c *Config) TelemetryEnabled() bool {
	return c.Telemetry.Endpoint != ""
}
