package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-p string   shared app password (plain or bcrypt hash)
//	-s string   JWT HMAC secret key
//	-t int      auth cookie validity, days
//	-hi int     database health probe interval, seconds
//	-su string  S3 root user
//	-sp string  S3 root password
//	-sb string  S3 bucket name
//	-sr string  S3 region
//	-se string  S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   log level (debug, info, warn, error)
//	-sc         mark the auth cookie Secure (also -sc=false)
func parseFlags(config *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-a", "-g", "-d", "-p", "-s", "-t", "-hi", "-su", "-sp", "-sb", "-sr", "-se", "-l"},
		[]string{"-sc"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AppPassword, "p", config.AppPassword, "app password or bcrypt hash")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.BoolVar(&config.SecureCookie, "sc", config.SecureCookie, "set the Secure attribute on the auth cookie")

	cookieDays := fs.Int("t", int(config.CookieValidityDuration/(24*time.Hour)), "auth cookie validity (in days)")
	healthSeconds := fs.Int("hi", int(config.HealthCheckInterval.Seconds()), "health check interval (in seconds)")

	fs.StringVar(&config.S3RootUser, "su", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "sp", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "sb", config.S3Bucket, "S3 export bucket")
	fs.StringVar(&config.S3Region, "sr", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "se", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CookieValidityDuration = time.Duration(*cookieDays) * 24 * time.Hour
	config.HealthCheckInterval = time.Duration(*healthSeconds) * time.Second
}
