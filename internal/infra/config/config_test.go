package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.Backend != "metaphor" {
		t.Errorf("backend = %q, want metaphor", cfg.Search.Backend)
	}
	if cfg.Search.MaxContentLength != 3500 || cfg.Search.MaxSummaryLength != 300 {
		t.Errorf("unexpected truncation defaults: %d/%d",
			cfg.Search.MaxContentLength, cfg.Search.MaxSummaryLength)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
search:
  backend: google
  num_results: 3
  fetch_timeout: 5s
logger:
  level: debug
  format: json
tracer:
  enabled: true
  exporter: stdout
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.Backend != "google" {
		t.Errorf("backend = %q, want google", cfg.Search.Backend)
	}
	if cfg.Search.NumResults != 3 {
		t.Errorf("num_results = %d, want 3", cfg.Search.NumResults)
	}
	if cfg.Search.FetchTimeout != 5*time.Second {
		t.Errorf("fetch_timeout = %s, want 5s", cfg.Search.FetchTimeout)
	}
	// Unset fields keep their defaults.
	if cfg.Search.MaxContentLength != 3500 {
		t.Errorf("max_content_length = %d, want default 3500", cfg.Search.MaxContentLength)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("logger config not applied: %+v", cfg.Logger)
	}
	if !cfg.Tracer.Enabled || cfg.Tracer.Exporter != "stdout" {
		t.Errorf("tracer config not applied: %+v", cfg.Tracer)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("search: ["), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WEBSCOUT_SEARCH_BACKEND", "google")
	t.Setenv("WEBSCOUT_NUM_RESULTS", "7")
	t.Setenv("WEBSCOUT_LOG_LEVEL", "warn")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)

	if cfg.Search.Backend != "google" {
		t.Errorf("backend = %q, want google", cfg.Search.Backend)
	}
	if cfg.Search.NumResults != 7 {
		t.Errorf("num_results = %d, want 7", cfg.Search.NumResults)
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logger.Level)
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Defaults()
	cfg.Search.Backend = "askjeeves"
	if err := Validate(cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestValidateRejectsBadLimits(t *testing.T) {
	cfg := Defaults()
	cfg.Search.MaxSummaryLength = cfg.Search.MaxContentLength + 1
	if err := Validate(cfg); err == nil {
		t.Error("expected error for summary limit above content limit")
	}

	cfg = Defaults()
	cfg.Search.MaxContentLength = 0
	if err := Validate(cfg); err == nil {
		t.Error("expected error for zero content limit")
	}

	cfg = Defaults()
	cfg.Search.NumResults = 0
	if err := Validate(cfg); err == nil {
		t.Error("expected error for zero num_results")
	}

	cfg = Defaults()
	cfg.Search.FetchTimeout = 0
	if err := Validate(cfg); err == nil {
		t.Error("expected error for zero fetch_timeout")
	}
}
