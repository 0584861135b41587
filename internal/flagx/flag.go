// Package flagx holds the small command-line and environment helpers the
// config packages build on. Each config layer parses only the flags it owns,
// so several layers can share os.Args without tripping over each other.
package flagx

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// FilterArgs keeps only the valued flags named in allowedFlags, each with
// its value. Both "-c conf.json" and "-c=conf.json" forms are kept;
// everything else, positionals included, is dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	return FilterArgsWithBools(args, allowedFlags, nil)
}

// FilterArgsWithBools is FilterArgs for a flag set that also has boolean
// switches. A bare switch never consumes the next token, so "-sc start"
// keeps "-sc" and drops "start". Switches may still be given as "-sc=false".
func FilterArgsWithBools(args []string, valued, bools []string) []string {
	kinds := make(map[string]bool, len(valued)+len(bools))
	for _, f := range valued {
		kinds[f] = true
	}
	for _, f := range bools {
		kinds[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, inline := strings.Cut(arg, "=")
		takesValue, known := kinds[name]
		if !known {
			continue
		}
		out = append(out, arg)

		if inline || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// JsonConfigFlags extracts the config file path provided via -c or -config.
// If neither is present, an empty string is returned.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// EnvString overwrites *dst with the value of the environment variable key
// when it is set and non-empty.
func EnvString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// EnvBool overwrites *dst with the parsed value of key. Unparsable values
// are ignored.
func EnvBool(dst *bool, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
