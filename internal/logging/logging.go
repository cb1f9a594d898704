// Package logging builds the zap loggers used by the command line driver
// and handed to game sessions.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLegacy  = "legacy"
)

// Options controls logger construction.
type Options struct {
	Level  string    // debug, info, warn, error; anything else means info
	Format string    // console (default), json or legacy
	Writer io.Writer // defaults to os.Stderr
	Caller bool      // annotate entries with the calling file and line
}

// New builds a logger from opts.
func New(opts Options) *zap.Logger {
	level, _ := ParseLevel(opts.Level)
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	core := zapcore.NewCore(encoder(format), zapcore.AddSync(w), level)

	logger := zap.New(core)
	if opts.Caller || format == FormatLegacy {
		logger = logger.WithOptions(zap.AddCaller())
	}
	return logger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
}

// ValidFormat reports whether format names a known encoder. The empty
// string selects the default.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole, FormatJSON, FormatLegacy:
		return true
	}
	return false
}

// ParseLevel converts a level name to a zapcore.Level. Unknown names give
// InfoLevel and false.
func ParseLevel(s string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info", "":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

// OpenFile opens path for appending log output, creating its directory
// when needed. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func encoder(format string) zapcore.Encoder {
	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig())
	case FormatLegacy:
		return zapcore.NewConsoleEncoder(legacyEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(consoleEncoderConfig())
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

func legacyEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}
