package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/bikeshare/internal/tripgen"
)

// Default configuration constants.
const (
	defaultLogLevel = "info"
	defaultTimeout  = 10 * time.Minute
)

func main() {
	var (
		dir      = flag.String("dir", ".", "Directory the city files are written to")
		rows     = flag.Int("rows", tripgen.DefaultRows, "Rows per city file")
		seed     = flag.Uint64("seed", tripgen.DefaultSeed, "Seed for the random source")
		logLevel = flag.String("log", defaultLogLevel, "Log level: debug, info, warn, error")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		tripgen.ShowHelp(os.Stdout)
		return
	}

	if err := tripgen.SetupLogging(*logLevel); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	config := &tripgen.Config{
		Dir:      *dir,
		Rows:     *rows,
		Seed:     *seed,
		LogLevel: *logLevel,
	}

	if _, err := tripgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		cancel()
		stop()
		os.Exit(1)
	}
}
