// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Legacy   LegacyConfig
	Supplier SupplierConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// LegacyConfig holds the pass-through target settings.
type LegacyConfig struct {
	// TargetURL is the legacy booking backend every non-adapted request
	// is forwarded to.
	TargetURL string `env:"LEGACY_TARGET_URL" envDefault:"http://localhost:9000"`

	// StripPrefix is an optional fixed path prefix removed before
	// forwarding (empty = forward the path unchanged).
	StripPrefix string `env:"LEGACY_STRIP_PREFIX" envDefault:""`
}

// SupplierConfig holds the adapted supplier endpoints and call settings.
type SupplierConfig struct {
	DuffelURL    string        `env:"SUPPLIER_DUFFEL_URL" envDefault:"https://api.duffel.com/air/offer_requests"`
	IATALocalURL string        `env:"SUPPLIER_IATALOCAL_URL" envDefault:"http://localhost:9100/v1/search"`
	Timeout      time.Duration `env:"SUPPLIER_TIMEOUT" envDefault:"15s"`

	// RateLimitRPS and RateLimitBurst bound the outbound call rate per
	// supplier.
	RateLimitRPS   float64 `env:"SUPPLIER_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"SUPPLIER_RATE_LIMIT_BURST" envDefault:"20"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Supplier.Timeout <= 0 {
		return fmt.Errorf("SUPPLIER_TIMEOUT must be positive")
	}
	if cfg.Supplier.RateLimitRPS <= 0 {
		return fmt.Errorf("SUPPLIER_RATE_LIMIT_RPS must be positive")
	}

	for name, raw := range map[string]string{
		"LEGACY_TARGET_URL":      cfg.Legacy.TargetURL,
		"SUPPLIER_DUFFEL_URL":    cfg.Supplier.DuffelURL,
		"SUPPLIER_IATALOCAL_URL": cfg.Supplier.IATALocalURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
