// Package repository reads city trip files into domain datasets.
package repository

import (
	"context"

	"github.com/okian/bikeshare/internal/domain/model"
)

// Store provides read access to the per-city trip data.
type Store interface {
	// Load reads every trip for city, with month and weekday derived.
	// Each call reads the source afresh; nothing is cached between calls.
	Load(ctx context.Context, city string) (*model.Dataset, error)
}
