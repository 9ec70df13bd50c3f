package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"airline_tycoon/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newHandler(&buf, config.LoggingConfig{Level: "warn", Format: "json"}))
	l.Info("dropped")
	l.Warn("kept", "cash", "1,000")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"cash":"1,000"`) {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airline.log")
	l := New(config.LoggingConfig{Level: "info", Format: "text", File: path, MaxSizeMB: 1})
	l.Info("hello file")
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be enabled")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file missing message: %s", data)
	}
}
