package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome            = "COINADDR_HOME"
	EnvOutputFormat    = "COINADDR_OUTPUT_FORMAT"
	EnvVerbose         = "COINADDR_VERBOSE"
	EnvLogLevel        = "COINADDR_LOG_LEVEL"
	EnvDefaultCurrency = "COINADDR_DEFAULT_CURRENCY"
	EnvWorkers         = "COINADDR_WORKERS"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvDefaultCurrency); v != "" {
		cfg.Validation.DefaultCurrency = strings.ToLower(strings.TrimSpace(v))
	}

	// Non-numeric or non-positive values are ignored
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.Validation.Workers = n
		}
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
