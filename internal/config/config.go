// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Go projects typically manage configuration in one of these ways:
//  1. Struct literals with defaults (NewDefaultConfig)
//  2. Environment variables via os.Getenv() (Load overlays these on the defaults)
//  3. Config files (YAML/TOML) via "github.com/spf13/viper"
//  4. Command-line flags via the standard "flag" package
//
// Using typed structs (not raw strings/maps) gives you compile-time safety
// and IDE autocompletion.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the top-level configuration container.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Catalog CatalogConfig
	Billing BillingConfig
}

// ServerConfig holds HTTP server settings.
//
// Go Learning Note — time.Duration:
// Go uses time.Duration (an int64 of nanoseconds) instead of raw integers for
// timeouts and intervals. "10 * time.Second" is self-documenting, where a bare
// "10" would leave the unit to guesswork.
type ServerConfig struct {
	Port            string
	Mode            string // gin mode: debug|release|test
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string // debug|info|warn|error
	Format string // json|console
}

// CatalogConfig controls the movie catalogue the server starts with.
type CatalogConfig struct {
	SeedDemoMovies bool
}

// BillingConfig controls statement generation.
type BillingConfig struct {
	StatementWorkers int // goroutines used when building every customer's statement
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			Mode:            "release",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			SeedDemoMovies: true,
		},
		Billing: BillingConfig{
			StatementWorkers: 4,
		},
	}
}

// Load returns the defaults overlaid with any VIDEOSTORE_* / LOG_* environment
// variables that are set.
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if v := os.Getenv("VIDEOSTORE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VIDEOSTORE_PORT value %q: %w", v, err)
		}
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("port %d is out of range", port)
		}
		cfg.Server.Port = fmt.Sprintf(":%d", port)
	}
	mode, err := oneOf("VIDEOSTORE_MODE", cfg.Server.Mode, "debug", "release", "test")
	if err != nil {
		return nil, err
	}
	cfg.Server.Mode = mode

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"VIDEOSTORE_READ_TIMEOUT", &cfg.Server.ReadTimeout},
		{"VIDEOSTORE_WRITE_TIMEOUT", &cfg.Server.WriteTimeout},
		{"VIDEOSTORE_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if v := os.Getenv(d.key); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", d.key, err)
			}
			*d.dst = parsed
		}
	}

	if cfg.Logging.Level, err = oneOf("LOG_LEVEL", cfg.Logging.Level, "debug", "info", "warn", "warning", "error"); err != nil {
		return nil, err
	}
	if cfg.Logging.Format, err = oneOf("LOG_FORMAT", cfg.Logging.Format, "json", "console"); err != nil {
		return nil, err
	}

	if v := os.Getenv("VIDEOSTORE_SEED_DEMO_MOVIES"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VIDEOSTORE_SEED_DEMO_MOVIES value %q: %w", v, err)
		}
		cfg.Catalog.SeedDemoMovies = seed
	}

	if v := os.Getenv("VIDEOSTORE_STATEMENT_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid VIDEOSTORE_STATEMENT_WORKERS value %q", v)
		}
		cfg.Billing.StatementWorkers = workers
	}

	return cfg, nil
}

// oneOf reads key from the environment and rejects anything outside allowed.
// Values are compared case-insensitively and returned lower-cased.
func oneOf(key, fallback string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback, nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid %s value %q (allowed: %s)", key, v, strings.Join(allowed, ", "))
}
