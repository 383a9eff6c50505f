// Package config loads runtime configuration for the EventHive CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   session file path
//	-p int      initial dashboard page size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.com",
//	  "request_timeout": "15s",
//	  "session_file": "/home/ada/.config/eventhive/session.json",
//	  "page_size": 10
//	}
//
// Primary API
//
//   - type Config                     - holds the CLI runtime settings
//   - func LoadConfig() *Config       - builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   - sets sensible defaults
package config
