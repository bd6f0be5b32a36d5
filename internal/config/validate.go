package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxFetchTimeout caps FETCH_TIMEOUT. Startup and admin refresh deadlines
// are sized above it.
const MaxFetchTimeout = time.Minute

const (
	minFetchTimeout    = time.Second
	minRefreshInterval = time.Minute
	minAdminTokenLen   = 16
)

func (c *Config) validate() error {
	validators := []func() error{
		c.validateNetwork,
		c.validateSource,
		c.validateDatabase,
		c.validateAdmin,
		c.validateCORS,
		c.validateLogging,
		c.validateRateLimit,
	}

	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Loopback for local runs; 0.0.0.0/:: for containers where the network
	// boundary is enforced outside the process.
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateSource() error {
	u, err := url.Parse(c.DataURL)
	if err != nil {
		return fmt.Errorf("COUNTRIES_DATA_URL is not a valid URL: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("COUNTRIES_DATA_URL must include a host")
		}
	case "file":
		if u.Path == "" {
			return fmt.Errorf("COUNTRIES_DATA_URL file:// URL must include a path")
		}
	default:
		return fmt.Errorf("COUNTRIES_DATA_URL scheme must be http, https or file (got %q)", u.Scheme)
	}

	if c.FetchTimeout < minFetchTimeout || c.FetchTimeout > MaxFetchTimeout {
		return fmt.Errorf("FETCH_TIMEOUT must be between %s and %s", minFetchTimeout, MaxFetchTimeout)
	}

	if c.RefreshInterval != 0 && c.RefreshInterval < minRefreshInterval {
		return fmt.Errorf("REFRESH_INTERVAL must be 0 (disabled) or at least %s", minRefreshInterval)
	}

	return nil
}

// validateDatabase checks DATABASE_URL when set; an empty value disables snapshots.
func (c *Config) validateDatabase() error {
	if !c.SnapshotsEnabled() {
		return nil
	}

	dbURL, err := url.Parse(c.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
	}

	if dbURL.Scheme != "postgres" && dbURL.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL scheme must be postgres:// or postgresql://")
	}

	dbHost := dbURL.Hostname()
	if dbHost == "" {
		return fmt.Errorf("DATABASE_URL must include a host")
	}

	if !isLoopback(dbHost) && dbURL.Query().Get("sslmode") == "disable" {
		return fmt.Errorf("DATABASE_URL sslmode=disable is not allowed for non-local host %q", dbHost)
	}

	return nil
}

func (c *Config) validateAdmin() error {
	if c.AdminEnabled() && len(c.AdminToken.Value()) < minAdminTokenLen {
		return fmt.Errorf("ADMIN_TOKEN must be at least %d characters", minAdminTokenLen)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is not a valid level: %w", err)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got %q", c.LogFormat)
	}

	return nil
}

func (c *Config) validateRateLimit() error {
	if c.RateLimit < 1 {
		return fmt.Errorf("RATE_LIMIT must be a positive integer")
	}

	if c.RateBurst < 1 {
		return fmt.Errorf("RATE_BURST must be a positive integer")
	}

	return nil
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
