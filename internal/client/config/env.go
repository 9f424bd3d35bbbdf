package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
// Unset variables leave the current value untouched.
func parseEnv(cfg *Config) {
	// a missing .env file is the normal case
	_ = godotenv.Load()

	if v := os.Getenv("CFORGE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CFORGE_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CFORGE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CFORGE_API_SECRET"); v != "" {
		cfg.APISecret = v
	}
	if v := os.Getenv("CFORGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CFORGE_STRICT_DECODE"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			cfg.StrictDecode = strict
		}
	}
}
