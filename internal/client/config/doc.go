// Package config loads runtime configuration for the PomoKeeper terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags).
//  4. POMO_* environment variables (see parseEnv).
//
// Supported flags
//
//	-a string       base URL of the API server
//	-state string   client state file (default ~/.pomokeeper/state.toml)
//	-timeout int    request timeout (seconds)
//	-log string     log level (default warn)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "state_path": "/home/me/.pomokeeper/state.toml",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
