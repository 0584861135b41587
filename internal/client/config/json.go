package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pomokeeper/internal/flagx"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// JsonConfig mirrors the client config file. request_timeout takes either a
// Go duration string or integer nanoseconds.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	StatePath      string         `json:"state_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// apply copies the fields present in the file onto cfg.
func (jc JsonConfig) apply(cfg *Config) {
	for dst, v := range map[*string]string{
		&cfg.ServerURL: jc.ServerURL,
		&cfg.StatePath: jc.StatePath,
		&cfg.LogLevel:  jc.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

// parseJson overlays cfg with the file named by -c or -config. It panics
// when the file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}
