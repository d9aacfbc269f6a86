package tripgen

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/pkg/logger"
)

// header returns the column names of a generated file. The leading unnamed
// column holds the trip id, as in the published datasets.
func header(spec citySpec) []string {
	cols := []string{"", model.ColStartTime, "End Time", model.ColTripDuration, model.ColStartStation, model.ColEndStation, model.ColUserType}
	if spec.Demographics {
		cols = append(cols, model.ColGender, model.ColBirthYear)
	}
	return cols
}

// newRand returns the random source for the city at index. Each city gets its
// own stream so files do not depend on generation order.
func newRand(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index)+1)) //nolint:gosec // synthetic data
}

// generateRows creates rows trips for spec.
func generateRows(spec citySpec, rows int, rng *rand.Rand) [][]string {
	period := periodEnd.Sub(periodStart)
	out := make([][]string, rows)
	for i := range out {
		start := periodStart.Add(time.Duration(rng.Int64N(int64(period/time.Second))) * time.Second)
		seconds := float64(minDurationSeconds + rng.IntN(maxDurationSeconds-minDurationSeconds))
		duration := strconv.Itoa(int(seconds))
		if spec.Fractional {
			seconds += float64(rng.IntN(1000)) / 1000
			duration = strconv.FormatFloat(seconds, 'f', -1, 64)
		}
		end := start.Add(time.Duration(seconds*float64(time.Second)) + endTimeSkew)

		userType := "Subscriber"
		if rng.IntN(customerShare) == 0 {
			userType = "Customer"
		}

		row := []string{
			strconv.Itoa(i + 1),
			start.Format(time.DateTime),
			end.Format(time.DateTime),
			duration,
			spec.Stations[rng.IntN(len(spec.Stations))],
			spec.Stations[rng.IntN(len(spec.Stations))],
			userType,
		}
		if spec.Demographics {
			gender, year := "", ""
			if rng.IntN(blankEvery) != 0 {
				gender = "Male"
				if rng.IntN(3) == 0 {
					gender = "Female"
				}
				year = strconv.Itoa(birthYearMin+rng.IntN(birthYearRange)) + ".0"
			}
			row = append(row, gender, year)
		}
		out[i] = row
	}
	return out
}

// writeCity writes one city file to path.
func writeCity(path string, spec citySpec, rows [][]string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), directoryPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header(spec)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// PathResolver resolves a city to the file it is written to.
type PathResolver interface {
	Path(city string) (string, error)
}

// generateFiles writes every city concurrently, one goroutine per city.
func generateFiles(ctx context.Context, config *Config, paths PathResolver, stats *Stats) error {
	type cityResult struct {
		city string
		path string
		rows int
		err  error
	}

	resultChan := make(chan cityResult, len(cities))
	for i, spec := range cities {
		go func(index int, spec citySpec) {
			path, err := paths.Path(spec.Name)
			if err != nil {
				resultChan <- cityResult{city: spec.Name, err: err}
				return
			}
			select {
			case <-ctx.Done():
				resultChan <- cityResult{city: spec.Name, err: ctx.Err()}
				return
			default:
			}
			rows := generateRows(spec, config.Rows, newRand(config.Seed, index))
			resultChan <- cityResult{city: spec.Name, path: path, rows: len(rows), err: writeCity(path, spec, rows)}
		}(i, spec)
	}

	var firstErr error
	for range cities {
		result := <-resultChan
		if result.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to generate %s: %w", result.city, result.err)
			}
			continue
		}
		stats.FilesWritten++
		stats.RowsWritten += result.rows
		logger.Get().Info(ctx, "city file written",
			logger.String("city", result.city),
			logger.String("path", result.path),
			logger.Int("rows", result.rows))
	}
	return firstErr
}
