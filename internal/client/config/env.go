package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error.
//
// Recognized variables:
//
//	EVENTHIVE_SERVER_URL    base URL of the backend REST API
//	EVENTHIVE_TIMEOUT       request timeout in seconds
//	EVENTHIVE_SESSION_FILE  session file path
//	EVENTHIVE_PAGE_SIZE     initial dashboard page size
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EVENTHIVE_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("EVENTHIVE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("EVENTHIVE_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("EVENTHIVE_PAGE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = size
		}
	}
}
