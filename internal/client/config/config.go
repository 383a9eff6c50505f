package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the EventHive CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - SessionFile: path of the JSON file the session is persisted to.
//   - PageSize: initial dashboard page size.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionFile    string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.SessionFile = defaultSessionFile()
	c.PageSize = 10
}

// defaultSessionFile places the session under the user's config directory,
// falling back to the working directory when none is available.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "eventhive", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
