package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
// Search-provider credentials (GOOGLE_API_KEY, GOOGLE_CSE_ID,
// METAPHOR_API_KEY) are deliberately not part of the config: backends read
// them from the environment at call time.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Logger LoggerConfig `yaml:"logger"`
	Tracer TracerConfig `yaml:"tracer"`
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	Backend          string        `yaml:"backend"`            // "google" or "metaphor"
	NumResults       int           `yaml:"num_results"`        // default result count per query
	MaxContentLength int           `yaml:"max_content_length"` // runes, per normalized page
	MaxSummaryLength int           `yaml:"max_summary_length"` // runes, prefix of content
	FetchTimeout     time.Duration `yaml:"fetch_timeout"`      // per page fetch
	UserAgent        string        `yaml:"user_agent"`
	SSRFProtection   bool          `yaml:"ssrf_protection"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// TracerConfig holds tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Search: SearchConfig{
			Backend:          "metaphor",
			NumResults:       5,
			MaxContentLength: 3500,
			MaxSummaryLength: 300,
			FetchTimeout:     10 * time.Second,
			UserAgent:        "webscout/1.0",
			SSRFProtection:   true,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
	}
}

// Load reads a YAML config file, applies env overrides, and validates.
// A missing file is not an error: defaults plus env overrides are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies WEBSCOUT_* environment overrides on top of cfg.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEBSCOUT_SEARCH_BACKEND"); v != "" {
		cfg.Search.Backend = v
	}
	if v := os.Getenv("WEBSCOUT_NUM_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Search.NumResults = n
		}
	}
	if v := os.Getenv("WEBSCOUT_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("WEBSCOUT_LOG_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("WEBSCOUT_TRACE_EXPORTER"); v != "" {
		cfg.Tracer.Enabled = true
		cfg.Tracer.Exporter = v
	}
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	switch cfg.Search.Backend {
	case "google", "metaphor":
	default:
		return fmt.Errorf("search.backend: unknown backend %q (want: google, metaphor)", cfg.Search.Backend)
	}
	if cfg.Search.NumResults <= 0 {
		return fmt.Errorf("search.num_results must be > 0, got %d", cfg.Search.NumResults)
	}
	if cfg.Search.MaxContentLength <= 0 {
		return fmt.Errorf("search.max_content_length must be > 0, got %d", cfg.Search.MaxContentLength)
	}
	if cfg.Search.MaxSummaryLength <= 0 || cfg.Search.MaxSummaryLength > cfg.Search.MaxContentLength {
		return fmt.Errorf("search.max_summary_length must be in 1..max_content_length, got %d",
			cfg.Search.MaxSummaryLength)
	}
	if cfg.Search.FetchTimeout <= 0 {
		return fmt.Errorf("search.fetch_timeout must be > 0, got %s", cfg.Search.FetchTimeout)
	}
	return nil
}
