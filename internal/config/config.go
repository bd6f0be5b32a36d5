// Package config provides environment-driven configuration for the route service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/persistorai/landroute/internal/countries"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	Port            string
	ListenHost      string
	DataURL         string
	FetchTimeout    time.Duration
	RefreshInterval time.Duration
	DatabaseURL     Secret
	AdminToken      Secret
	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
	RateLimit       int
	RateBurst       int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("PORT", "8080"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		DataURL:     envOrDefault("COUNTRIES_DATA_URL", countries.DefaultDataURL),
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		AdminToken:  Secret(envOrDefault("ADMIN_TOKEN", "")),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
	}

	var err error

	if cfg.FetchTimeout, err = time.ParseDuration(envOrDefault("FETCH_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be a duration: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(envOrDefault("REFRESH_INTERVAL", "0s")); err != nil {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be a duration: %w", err)
	}

	if cfg.RateLimit, err = strconv.Atoi(envOrDefault("RATE_LIMIT", "100")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT must be an integer: %w", err)
	}

	if cfg.RateBurst, err = strconv.Atoi(envOrDefault("RATE_BURST", "200")); err != nil {
		return nil, fmt.Errorf("RATE_BURST must be an integer: %w", err)
	}

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// SnapshotsEnabled reports whether a snapshot database is configured.
func (c *Config) SnapshotsEnabled() bool {
	return c.DatabaseURL.Value() != ""
}

// AdminEnabled reports whether the admin endpoints accept requests.
func (c *Config) AdminEnabled() bool {
	return c.AdminToken.Value() != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
