package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/config"
	"github.com/mrz1836/coinaddr/internal/output"
	"github.com/mrz1836/coinaddr/internal/service/address"
	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify coinaddr configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.coinaddr/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  coinaddr config init
  coinaddr config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration settings.

Example:
  coinaddr config show
  coinaddr config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.

Examples:
  coinaddr config get validation.default_currency
  coinaddr config get output.default_format
  coinaddr config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.
The configuration file will be updated immediately.

Examples:
  coinaddr config set validation.default_currency btc
  coinaddr config set validation.workers 16
  coinaddr config set output.default_format json
  coinaddr config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return coinerr.WithSuggestion(
			coinerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	// Ensure directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Create default config
	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	// Write config file
	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - validation.default_currency: Currency to check against (bitcoin/litecoin/any)")
	outln(w, "  - validation.workers: Concurrent validations for batch")
	outln(w, "  - output.default_format: Output format (text/json/auto)")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if formatter.Format() == output.FormatJSON {
		return displayConfigJSON(w, cfg)
	}

	return displayConfigText(w, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	path := args[0]

	value, err := getConfigValue(cfg, path)
	if err != nil {
		return coinerr.WithSuggestion(err, fmt.Sprintf("configuration path '%s' not found", path))
	}

	w := cmd.OutOrStdout()
	outln(w, value)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	value := args[1]

	// Validate the path exists
	if _, err := getConfigValue(cfg, path); err != nil {
		return coinerr.WithSuggestion(err, fmt.Sprintf("configuration path '%s' not found", path))
	}

	// Load current config from file
	configPath := config.Path(cfg.Home)
	currentCfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, coinerr.ErrConfigNotFound):
		// No file yet, start from defaults
		currentCfg = config.Defaults()
		currentCfg.Home = cfg.Home
	case err != nil:
		return coinerr.WithSuggestion(err, "fix or remove the config file, or run 'coinaddr config init --force'")
	}

	// Update the value
	if err := setConfigValue(currentCfg, path, value); err != nil {
		return err
	}

	// Save updated config
	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Set %s = %s\n", path, value)

	return nil
}

func unknownKey(details map[string]string) error {
	return coinerr.WithDetails(coinerr.ErrUnknownConfigKey, details)
}

func invalidValue(value, valid string) error {
	return coinerr.WithDetails(coinerr.ErrInvalidValue, map[string]string{"value": value, "valid": valid})
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, path string) (string, error) {
	parts := strings.Split(path, ".")

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "home":
			return c.Home, nil
		default:
			return "", unknownKey(map[string]string{"key": parts[0]})
		}
	case 2:
		switch parts[0] {
		case "validation":
			return getValidationValue(c, parts[1])
		case "output":
			return getOutputValue(c, parts[1])
		case "logging":
			return getLoggingValue(c, parts[1])
		default:
			return "", unknownKey(map[string]string{"section": parts[0]})
		}
	default:
		return "", unknownKey(map[string]string{"path": path})
	}
}

func getValidationValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_currency":
		return c.Validation.DefaultCurrency, nil
	case "workers":
		return strconv.Itoa(c.Validation.Workers), nil
	default:
		return "", unknownKey(map[string]string{"section": "validation", "key": key})
	}
}

func getOutputValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_format":
		return c.Output.DefaultFormat, nil
	case "verbose":
		return fmt.Sprintf("%t", c.Output.Verbose), nil
	default:
		return "", unknownKey(map[string]string{"section": "output", "key": key})
	}
}

func getLoggingValue(c *config.Config, key string) (string, error) {
	switch key {
	case "level":
		return c.Logging.Level, nil
	case "file":
		return c.Logging.File, nil
	default:
		return "", unknownKey(map[string]string{"section": "logging", "key": key})
	}
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, path, value string) error {
	parts := strings.Split(path, ".")

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "home":
			c.Home = value
			return nil
		default:
			return unknownKey(map[string]string{"key": parts[0]})
		}
	case 2:
		switch parts[0] {
		case "validation":
			return setValidationValue(c, parts[1], value)
		case "output":
			return setOutputValue(c, parts[1], value)
		case "logging":
			return setLoggingValue(c, parts[1], value)
		default:
			return unknownKey(map[string]string{"section": parts[0]})
		}
	default:
		return unknownKey(map[string]string{"path": path})
	}
}

func setValidationValue(c *config.Config, key, value string) error {
	switch key {
	case "default_currency":
		currency, ok := address.ResolveCurrency(value)
		if !ok {
			return invalidValue(value, strings.Join(currencyNames(), ", "))
		}
		// Store the canonical name so "BTC" and "bitcoin" read back the same
		if currency == nil {
			c.Validation.DefaultCurrency = config.CurrencyAny
		} else {
			c.Validation.DefaultCurrency = currency.Name
		}
		return nil
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > config.MaxWorkers {
			return invalidValue(value, fmt.Sprintf("1 to %d", config.MaxWorkers))
		}
		c.Validation.Workers = n
		return nil
	default:
		return unknownKey(map[string]string{"section": "validation", "key": key})
	}
}

func setOutputValue(c *config.Config, key, value string) error {
	switch key {
	case "default_format":
		if value != "text" && value != "json" && value != "auto" {
			return invalidValue(value, "text, json, or auto")
		}
		c.Output.DefaultFormat = value
		return nil
	case "verbose":
		c.Output.Verbose = value == "true"
		return nil
	default:
		return unknownKey(map[string]string{"section": "output", "key": key})
	}
}

func setLoggingValue(c *config.Config, key, value string) error {
	switch key {
	case "level":
		validLevels := []string{"off", "error", "debug"}
		for _, l := range validLevels {
			if value == l {
				c.Logging.Level = value
				return nil
			}
		}
		return invalidValue(value, "off, error, or debug")
	case "file":
		c.Logging.File = value
		return nil
	default:
		return unknownKey(map[string]string{"section": "logging", "key": key})
	}
}

// displayConfigText shows the config in text format.
func displayConfigText(w io.Writer, c *config.Config) error {
	outln(w, "Configuration:")
	outln(w)
	out(w, "  Home: %s\n", c.Home)
	outln(w)
	outln(w, "  Validation:")
	out(w, "    default_currency: %s\n", c.Validation.DefaultCurrency)
	out(w, "    workers: %d\n", c.Validation.Workers)
	outln(w)
	outln(w, "  Output:")
	out(w, "    default_format: %s\n", c.Output.DefaultFormat)
	out(w, "    verbose: %t\n", c.Output.Verbose)
	outln(w)
	outln(w, "  Logging:")
	out(w, "    level: %s\n", c.Logging.Level)
	out(w, "    file: %s\n", c.Logging.File)

	return nil
}

// displayConfigJSON shows the config in JSON format.
func displayConfigJSON(w io.Writer, c *config.Config) error {
	type configJSON struct {
		Version    int    `json:"version"`
		Home       string `json:"home"`
		Validation struct {
			DefaultCurrency string `json:"default_currency"`
			Workers         int    `json:"workers"`
		} `json:"validation"`
		Output struct {
			DefaultFormat string `json:"default_format"`
			Verbose       bool   `json:"verbose"`
		} `json:"output"`
		Logging struct {
			Level string `json:"level"`
			File  string `json:"file"`
		} `json:"logging"`
	}

	outCfg := configJSON{
		Version: c.Version,
		Home:    c.Home,
	}
	outCfg.Validation.DefaultCurrency = c.Validation.DefaultCurrency
	outCfg.Validation.Workers = c.Validation.Workers
	outCfg.Output.DefaultFormat = c.Output.DefaultFormat
	outCfg.Output.Verbose = c.Output.Verbose
	outCfg.Logging.Level = c.Logging.Level
	outCfg.Logging.File = c.Logging.File

	return writeJSON(w, outCfg)
}
