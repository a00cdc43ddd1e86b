// Package logger builds the zerolog logger shared across the gateway.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls level, output format and the service tag attached to
// every entry.
type Config struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ota-proxy"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "ota-proxy",
	}
}

// New creates a logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a logger with a custom writer, which tests use to
// capture output. An unknown level falls back to info.
func NewWithOutput(cfg Config, output io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()
}

// WithSupplier returns a child logger tagged with the supplier name.
func WithSupplier(log zerolog.Logger, supplier string) zerolog.Logger {
	return log.With().Str("supplier", supplier).Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
