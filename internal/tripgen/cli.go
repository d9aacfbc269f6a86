package tripgen

import (
	"fmt"
	"io"

	"github.com/okian/bikeshare/pkg/logger"
)

// SetupLogging initializes the global logger at level.
func SetupLogging(level string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the trip generator.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Bikeshare Trip Generator
========================

Writes synthetic trip files for Chicago, New York City and Washington so the
explorer can run without the published datasets. Washington files carry no
Gender or Birth Year columns.

Usage:
  go run ./cmd/gen-trips [options]

Options:
  -dir string
        Directory the city files are written to (default ".")
  -rows int
        Rows per city file (default 1000)
  -seed uint
        Seed for the random source (default 2017)
  -log string
        Log level: debug, info, warn, error (default "info")
  -help
        Show this help message

Examples:
  # Write the default files into ./data
  go run ./cmd/gen-trips -dir data

  # Larger files with a different seed
  go run ./cmd/gen-trips -dir data -rows 100000 -seed 7
`)
}
