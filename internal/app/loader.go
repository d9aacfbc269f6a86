package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/bikeshare/internal/adapters/repository"
	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/internal/domain/registry"
	"github.com/okian/bikeshare/pkg/logger"
	"github.com/okian/bikeshare/pkg/metrics"
)

// Loader reads a city's dataset and applies the month and day filters.
type Loader struct {
	store  repository.Store
	logger logger.Logger
	now    func() time.Time
}

// NewLoader creates a Loader reading through store.
func NewLoader(store repository.Store, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:  store,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the records of sel.City matching sel.Month and sel.Day, in
// source order. Failures wrap ErrLoad.
func (l *Loader) Load(ctx context.Context, sel model.FilterSelection) (*model.Dataset, error) {
	started := l.now()

	ds, err := l.store.Load(ctx, sel.City)
	if err != nil {
		metrics.RecordLoadError(loadErrorKind(err))
		l.logger.Error(ctx, "failed to load trips", logger.String("city", sel.City), logger.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, sel.City, err)
	}

	filtered := model.Filter(ds, sel)
	elapsed := l.now().Sub(started)
	metrics.RecordLoad(elapsed.Seconds(), ds.Len(), filtered.Len())
	l.logger.Info(ctx, "dataset loaded",
		logger.String("city", sel.City),
		logger.String("month", sel.Month),
		logger.String("day", sel.Day),
		logger.Int("rows", ds.Len()),
		logger.Int("matched", filtered.Len()),
		logger.Float64("seconds", elapsed.Seconds()),
	)
	return filtered, nil
}

// loadErrorKind classifies a load failure for the load_errors metric.
func loadErrorKind(err error) string {
	switch {
	case errors.Is(err, repository.ErrSourceUnavailable):
		return "source_unavailable"
	case errors.Is(err, repository.ErrMalformedSource):
		return "malformed_source"
	case errors.Is(err, registry.ErrUnknownCity):
		return "unknown_city"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
