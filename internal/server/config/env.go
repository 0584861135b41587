package config

import "github.com/dmitrijs2005/pomokeeper/internal/flagx"

// parseEnv applies environment overrides. Secrets are usually injected
// this way rather than on the command line.
//
//	APP_PASSWORD   shared app password
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     token signing key
//	COOKIE_SECURE  "true" to mark the auth cookie Secure
//	LOG_LEVEL      debug, info, warn or error
func parseEnv(config *Config) {
	flagx.EnvString(&config.AppPassword, "APP_PASSWORD")
	flagx.EnvString(&config.DatabaseDSN, "DATABASE_DSN")
	flagx.EnvString(&config.SecretKey, "JWT_SECRET")
	flagx.EnvBool(&config.SecureCookie, "COOKIE_SECURE")
	flagx.EnvString(&config.LogLevel, "LOG_LEVEL")
}
