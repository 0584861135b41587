package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/flagx"
)

var clientFlags = []string{"-a", "-state", "-timeout", "-log"}

// parseFlags reads the client flags out of os.Args:
//
//	-a string       base URL of the API server
//	-state string   path of the client state file
//	-timeout int    request timeout in seconds
//	-log string     log level
//
// Unknown tokens are dropped by flagx.FilterArgs first, so a stray
// argument never aborts startup. A malformed value for a known flag panics.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("pomo", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API server")
	fs.StringVar(&cfg.StatePath, "state", cfg.StatePath, "path of the client state file")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level (debug, info, warn, error)")
	seconds := fs.Int("timeout", int(cfg.RequestTimeout/time.Second), "request timeout (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], clientFlags)); err != nil {
		panic(err)
	}

	if *seconds > 0 {
		cfg.RequestTimeout = time.Duration(*seconds) * time.Second
	}
}
