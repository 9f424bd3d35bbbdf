package config

import (
	"encoding/json"
	"os"

	"github.com/cforge/cforge/internal/flagx"
	"github.com/cforge/cforge/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RetryAttempts  *uint64        `json:"retry_attempts"`
	RetryDelay     timex.Duration `json:"retry_delay"`
	StrictDecode   *bool          `json:"strict_decode"`
	DatabasePath   string         `json:"database_path"`
	APIKey         string         `json:"api_key"`
	APISecret      string         `json:"api_secret"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. When no file is given the function returns
// without touching the config. Read or unmarshal errors panic, matching the
// fail-fast startup policy.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}
	parseJsonFile(cfg, jsonConfigFile)
}

func parseJsonFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RetryAttempts != nil {
		cfg.RetryAttempts = *jc.RetryAttempts
	}
	if jc.RetryDelay.Duration != 0 {
		cfg.RetryDelay = jc.RetryDelay.Duration
	}
	if jc.StrictDecode != nil {
		cfg.StrictDecode = *jc.StrictDecode
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.APISecret != "" {
		cfg.APISecret = jc.APISecret
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
