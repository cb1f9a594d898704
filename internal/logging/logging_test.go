package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{" warning ", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"loud", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"", "console", "JSON", "legacy"} {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false; want true", f)
		}
	}
	if ValidFormat("xml") {
		t.Error("ValidFormat(xml) = true; want false")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "debug", Format: FormatJSON, Writer: &buf})

	logger.Debug("move_accepted", zap.String("from", "0,1"))
	_ = logger.Sync()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "move_accepted" || entry["from"] != "0,1" || entry["level"] != "debug" {
		t.Errorf("entry = %v; want msg=move_accepted from=0,1 level=debug", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Writer: &buf})

	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "WARN") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNew_Legacy(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: FormatLegacy, Writer: &buf})
	logger.Info("undo")
	_ = logger.Sync()

	if out := buf.String(); !strings.Contains(out, " | INFO | ") {
		t.Errorf("legacy output = %q; want ' | INFO | ' separators", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chess.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger := New(Options{Writer: f})
	logger.Info("session_start")
	_ = logger.Sync()
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "session_start") {
		t.Errorf("log file = %q; want session_start entry", data)
	}
}
