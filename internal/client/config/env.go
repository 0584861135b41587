package config

import "github.com/dmitrijs2005/pomokeeper/internal/flagx"

// parseEnv applies POMO_* overrides, handy when the client runs from a
// shell alias.
//
//	POMO_SERVER     base URL of the API server
//	POMO_STATE      state file path
//	POMO_LOG_LEVEL  debug, info, warn or error
func parseEnv(cfg *Config) {
	flagx.EnvString(&cfg.ServerURL, "POMO_SERVER")
	flagx.EnvString(&cfg.StatePath, "POMO_STATE")
	flagx.EnvString(&cfg.LogLevel, "POMO_LOG_LEVEL")
}
