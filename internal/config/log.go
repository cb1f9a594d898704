package config

import (
	"fmt"

	"github.com/lgbarn/variant-chess-go/internal/errors"
	"github.com/lgbarn/variant-chess-go/internal/logging"
)

// LogConfig holds settings for session logging.
type LogConfig struct {
	Level  string // debug, info, warn or error
	Format string // console, json or legacy
	File   string // empty logs to stderr
	Caller bool
}

// NewLogConfig creates a LogConfig with default values. Only warnings are
// logged by default so the interactive board stays readable.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: logging.FormatConsole,
	}
}

// Options converts the configuration to logger options.
func (l *LogConfig) Options() logging.Options {
	return logging.Options{Level: l.Level, Format: l.Format, Caller: l.Caller}
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	if _, ok := logging.ParseLevel(l.Level); !ok {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if !logging.ValidFormat(l.Format) {
		return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}
