// Package cli implements the coinaddr command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coinaddr/internal/config"
	"github.com/mrz1836/coinaddr/internal/metrics"
	"github.com/mrz1836/coinaddr/internal/output"
	"github.com/mrz1836/coinaddr/internal/service/address"
	coinerr "github.com/mrz1836/coinaddr/pkg/errors"
)

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
	svc       *address.Service
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coinaddr",
	Short: "Validate base58check cryptocurrency addresses",
	Long: `coinaddr checks the checksum embedded in base58-encoded cryptocurrency
addresses and reports the version byte that identifies the address type.

Bitcoin (P2PKH, P2SH, testnet) and Litecoin (mainnet, testnet) addresses are
recognized. With --currency any, only the base58check checksum is verified.

Example:
  coinaddr validate 17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem
  coinaddr validate --currency ltc LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz
  coinaddr batch addresses.txt --currency btc -o json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd.ErrOrStderr())
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		// Format and print error
		if formatter != nil {
			_ = output.FormatError(os.Stderr, err, formatter.Format())
		} else {
			_ = output.FormatError(os.Stderr, err, output.FormatText)
		}
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return coinerr.ExitCode(err)
}

// resolveHome picks the home directory from the flag, the environment, or the default.
func resolveHome() string {
	if homeDir != "" {
		return homeDir
	}
	if home := os.Getenv(config.EnvHome); home != "" {
		return home
	}
	return config.DefaultHome()
}

// loadConfig reads the config file under home. A missing file yields the
// defaults silently; an unreadable or invalid one yields the defaults with
// a warning on warnW.
func loadConfig(home string, warnW io.Writer) *config.Config {
	path := config.Path(home)

	loaded, err := config.Load(path)
	if err == nil {
		err = loaded.Validate()
	}
	if err != nil {
		if !errors.Is(err, coinerr.ErrConfigNotFound) {
			output.Warnf(warnW, "ignoring configuration at %s: %v", path, err)
		}
		loaded = config.Defaults()
	}

	loaded.Home = home
	return loaded
}

// initGlobals initializes global configuration, logger, formatter and service.
func initGlobals(warnW io.Writer) error {
	cfg = loadConfig(resolveHome(), warnW)

	// Apply environment variable overrides
	config.ApplyEnvironment(cfg)

	// Override with command-line flags
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = outputFormat
	}

	// Initialize logger
	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	var err error
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		// Use null logger if we can't create the file
		logger = config.NullLogger()
	}

	// Initialize formatter
	explicitFormat := output.ParseFormat(cfg.Output.DefaultFormat)
	detectedFormat := output.DetectFormat(os.Stdout, explicitFormat)
	formatter = output.NewFormatter(detectedFormat)

	svc = newService(cfg, logger)

	logger.DebugFields("coinaddr started", config.Fields{
		"home":   cfg.Home,
		"format": string(detectedFormat),
	})

	return nil
}

func newService(c *config.Config, l *config.Logger) *address.Service {
	return address.NewService(
		address.WithLogger(l),
		address.WithMetrics(metrics.Global),
		address.WithWorkers(c.Validation.Workers),
	)
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...interface{}) {
	fmt.Fprintln(w, args...)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "coinaddr data directory (default: ~/.coinaddr)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
