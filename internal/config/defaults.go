package config

// DefaultWorkers is the default batch validation concurrency.
const DefaultWorkers = 8

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.coinaddr",
		Validation: ValidationConfig{
			DefaultCurrency: CurrencyAny,
			Workers:         DefaultWorkers,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.coinaddr/coinaddr.log",
		},
	}
}
