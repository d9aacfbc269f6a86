// Package config defines process configuration structures and loading hooks.
//
// Conventions:
//   - New() returns a Config populated with defaults that reproduce the
//     console contract exactly; Load layers a YAML file and env vars on top.
//   - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strconv"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the directory the city files are resolved against.
	DataDir string `koanf:"data_dir"`

	// Cities maps a city name to its CSV file, relative to DataDir.
	Cities map[string]string `koanf:"cities"`

	// Months lists the month numbers users may filter by. The bundled data
	// only covers January to June.
	Months []string `koanf:"months"`

	// PageSize is the number of raw rows shown per page.
	PageSize int `koanf:"page_size"`

	// MetricsFile, when set, receives a Prometheus textfile on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// Default configuration values.
const (
	defaultLogLevel = "warn"
	defaultDataDir  = "."
	defaultPageSize = 5
)

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		DataDir:  defaultDataDir,
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		Months:   []string{"1", "2", "3", "4", "5", "6"},
		PageSize: defaultPageSize,
	}
}

// Validate reports the first invalid setting, wrapped with ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if len(c.Cities) == 0 {
		return fmt.Errorf("%w: cities must not be empty", ErrInvalidConfig)
	}
	for name, file := range c.Cities {
		if name == "" || file == "" {
			return fmt.Errorf("%w: city %q has no file", ErrInvalidConfig, name)
		}
	}
	if len(c.Months) == 0 {
		return fmt.Errorf("%w: months must not be empty", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Months))
	for _, m := range c.Months {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 || strconv.Itoa(n) != m {
			return fmt.Errorf("%w: month %q must be a number from 1 to 12", ErrInvalidConfig, m)
		}
		if seen[m] {
			return fmt.Errorf("%w: month %q listed twice", ErrInvalidConfig, m)
		}
		seen[m] = true
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalidConfig)
	}
	return nil
}
