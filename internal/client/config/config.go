package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the gigdesk CLI.
type Config struct {
	// APIBaseURL is the REST API root, e.g. "http://localhost:5000/api".
	APIBaseURL string `env:"API_BASE_URL"`
	// SessionDBPath is the sqlite file holding the persisted session.
	SessionDBPath string `env:"SESSION_DB"`
	LogLevel      string `env:"LOG_LEVEL"`
	// LogFormat is one of text, json or console.
	LogFormat string `env:"LOG_FORMAT"`
}

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "GIGDESK_"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SessionDBPath = defaultSessionDB()
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func defaultSessionDB() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "gigdesk-session.db"
	}
	return filepath.Join(dir, "gigdesk", "session.db")
}

// Load builds a Config from, in increasing precedence: defaults, a .env file
// in the working directory, GIGDESK_* environment variables, the JSON file
// named by -c/-config, and command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on malformed input.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
