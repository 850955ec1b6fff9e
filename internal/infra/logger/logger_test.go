package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webscout/internal/infra/config"
)

func TestNewDefaults(t *testing.T) {
	log, closer, err := New(config.LoggerConfig{})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	if log == nil {
		t.Fatal("nil logger")
	}
}

func TestNewJSONFormat(t *testing.T) {
	log, closer, err := New(config.LoggerConfig{Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	if log == nil {
		t.Fatal("nil logger")
	}
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, closer, err := New(config.LoggerConfig{Level: "debug", Output: path})
	if err != nil {
		t.Fatal(err)
	}

	log.Debug("hello from test")
	if err := closer(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
