// Package config provides configuration management for coinaddr.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/coinaddr/pkg/coinaddress"
	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

// CurrencyAny selects generic base58check validation with no currency check.
const CurrencyAny = "any"

// MaxWorkers caps the batch worker pool.
const MaxWorkers = 256

// Config represents the application configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Home       string           `yaml:"home"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ValidationConfig defines address validation settings.
type ValidationConfig struct {
	DefaultCurrency string `yaml:"default_currency"`
	Workers         int    `yaml:"workers"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
// Missing keys keep their default values.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, coinerr.WithDetails(coinerr.ErrConfigNotFound, map[string]string{"path": path})
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, coinerr.WithDetails(coinerr.ErrConfigInvalid, map[string]string{
			"path":  path,
			"error": err.Error(),
		})
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	currency := strings.ToLower(strings.TrimSpace(c.Validation.DefaultCurrency))
	if currency != CurrencyAny {
		if _, ok := coinaddress.LookupCurrency(currency); !ok {
			return invalid("validation.default_currency", c.Validation.DefaultCurrency)
		}
	}

	if c.Validation.Workers < 1 || c.Validation.Workers > MaxWorkers {
		return invalid("validation.workers", fmt.Sprintf("%d", c.Validation.Workers))
	}

	switch strings.ToLower(c.Output.DefaultFormat) {
	case "auto", "text", "json":
	default:
		return invalid("output.default_format", c.Output.DefaultFormat)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "off", "none", "error", "debug":
	default:
		return invalid("logging.level", c.Logging.Level)
	}

	return nil
}

func invalid(key, value string) error {
	return coinerr.WithDetails(coinerr.ErrConfigInvalid, map[string]string{
		"key":   key,
		"value": value,
	})
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the coinaddr home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetDefaultCurrency returns the configured default currency.
func (c *Config) GetDefaultCurrency() string {
	return c.Validation.DefaultCurrency
}

// GetWorkers returns the configured batch worker count.
func (c *Config) GetWorkers() int {
	return c.Validation.Workers
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default coinaddr home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coinaddr"
	}
	return filepath.Join(home, ".coinaddr")
}
