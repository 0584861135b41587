package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the PomoKeeper terminal client.
//
// Fields:
//   - ServerURL: base URL of the PomoKeeper HTTP API.
//   - StatePath: TOML file keeping the session cookie and preferences.
//   - RequestTimeout: upper bound for a single API call.
//   - LogLevel: minimum level of diagnostics written to stderr.
type Config struct {
	ServerURL      string
	StatePath      string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults points the client at a local server and keeps the log quiet
// so it does not interleave with the prompt.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.StatePath = DefaultStatePath()
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// DefaultStatePath is ~/.pomokeeper/state.toml, or a path relative to the
// working directory when the home directory is unknown.
func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pomokeeper", "state.toml")
	}
	return filepath.Join(home, ".pomokeeper", "state.toml")
}

// LoadConfig layers defaults, the JSON file, flags and POMO_* environment
// variables, each overriding the one before.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
