package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gigdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// keep the earlier value.
type JsonConfig struct {
	APIBaseURL    *string `json:"api_base_url"`
	SessionDBPath *string `json:"session_db"`
	LogLevel      *string `json:"log_level"`
	LogFormat     *string `json:"log_format"`
}

// parseJson overlays cfg with the JSON file given by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.LookupString(args, "c", "config")
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.SessionDBPath, jc.SessionDBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	return nil
}

func overlay(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
