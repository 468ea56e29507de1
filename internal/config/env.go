// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseEnvBool accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive).
func parseEnvBool(val string) (bool, bool) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the STENCIL_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
// Invalid values are ignored and the flag default is kept.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func boolOverride(key string, field func(*AppConfig) *bool, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		if b, ok := parseEnvBool(v); ok {
			*field(c) = b
		}
	}}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Geometry
	{"EXTENTS", []string{"extents"}, func(c *AppConfig, v string) {
		if e, err := ParseExtents(v); err == nil {
			c.Extents = e
		}
	}},
	{"BORDERS", []string{"borders"}, func(c *AppConfig, v string) {
		if b, err := ParseBorders(v); err == nil {
			c.Borders = b
		}
	}},

	// Numeric overrides
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"CHUNK_SIZE", []string{"chunk-size"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ChunkSize = parsed
		}
	}},
	{"START", []string{"start"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Start = parsed
		}
	}},
	{"ATOL", []string{"atol"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Atol = parsed
		}
	}},
	{"RTOL", []string{"rtol"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rtol = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},

	// Boolean overrides
	boolOverride("QUIET", func(c *AppConfig) *bool { return &c.Quiet }, "quiet", "q"),
	boolOverride("VERBOSE", func(c *AppConfig) *bool { return &c.Verbose }, "verbose", "v"),
	boolOverride("NO_COLOR", func(c *AppConfig) *bool { return &c.NoColor }, "no-color"),
	boolOverride("TUI", func(c *AppConfig) *bool { return &c.TUI }, "tui"),
	boolOverride("METRICS", func(c *AppConfig) *bool { return &c.Metrics }, "metrics"),
}

// applyEnvOverrides applies every environment override whose flags were not
// set explicitly. CLI flags always win over the environment.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
