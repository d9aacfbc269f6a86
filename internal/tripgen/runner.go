package tripgen

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/bikeshare/internal/adapters/repository"
	"github.com/okian/bikeshare/internal/domain/registry"
	"github.com/okian/bikeshare/pkg/logger"
)

// Run writes the city files and verifies them by loading each one back.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if config.Rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, config.Rows)
	}
	if config.Dir == "" {
		return nil, fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}

	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting trip generation",
		logger.String("dir", config.Dir),
		logger.Int("rows", config.Rows),
		logger.Any("seed", config.Seed))

	reg := registry.New(registry.WithDataDir(config.Dir))

	// Step 1: Generate and write files
	if err := generateFiles(ctx, config, reg, stats); err != nil {
		return stats, fmt.Errorf("trip generation failed: %w", err)
	}

	// Step 2: Read every file back
	if err := verifyFiles(ctx, config, repository.NewCSVStore(reg), stats); err != nil {
		return stats, err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return stats, nil
}

// verifyFiles loads each city through the trip store and checks row count
// and optional columns.
func verifyFiles(ctx context.Context, config *Config, store repository.Store, stats *Stats) error {
	for _, spec := range cities {
		ds, err := store.Load(ctx, spec.Name)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrVerification, spec.Name, err)
		}
		if ds.Len() != config.Rows {
			return fmt.Errorf("%w: %s: read %d rows, wrote %d", ErrVerification, spec.Name, ds.Len(), config.Rows)
		}
		if ds.Schema.HasGender != spec.Demographics || ds.Schema.HasBirthYear != spec.Demographics {
			return fmt.Errorf("%w: %s: unexpected schema %+v", ErrVerification, spec.Name, ds.Schema)
		}
		stats.RowsVerified += ds.Len()
	}
	return nil
}

// displayFinalStats logs the final generation statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var rowsPerSecond float64
	if stats.Duration > 0 {
		rowsPerSecond = float64(stats.RowsWritten) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("filesWritten", stats.FilesWritten),
		logger.Int("rowsWritten", stats.RowsWritten),
		logger.Int("rowsVerified", stats.RowsVerified),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("rowsPerSecond", rowsPerSecond))
}
