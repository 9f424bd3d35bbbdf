// Package config assembles the runtime settings of the CLI. Values are
// layered: built-in defaults, then environment (including a .env file if
// present), then an optional JSON config file, then command-line flags.
// Later sources take precedence over earlier ones.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CForge CLI.
type Config struct {
	// BaseURL is the root of the platform API.
	BaseURL string

	// RequestTimeout is the unified per-call timeout for every endpoint.
	RequestTimeout time.Duration

	// RetryAttempts bounds how many times a transport failure is retried.
	RetryAttempts uint64

	// RetryDelay is the pause between retry attempts.
	RetryDelay time.Duration

	// StrictDecode makes malformed problem records fail the decode instead
	// of being dropped.
	StrictDecode bool

	// DatabasePath is the sqlite file holding local submissions and the
	// session handle.
	DatabasePath string

	// APIKey and APISecret enable signed requests when both are set.
	APIKey    string
	APISecret string

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://codeforces.com/api"
	c.RequestTimeout = 15 * time.Second
	c.RetryAttempts = 3
	c.RetryDelay = 200 * time.Millisecond
	c.DatabasePath = "cforge.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
