package repository

import (
	"time"

	"github.com/okian/bikeshare/pkg/logger"
)

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *CSVStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeLayouts replaces the accepted start time layouts. They are tried in order.
func WithTimeLayouts(layouts ...string) Option {
	return func(s *CSVStore) {
		if len(layouts) > 0 {
			s.layouts = layouts
		}
	}
}

// WithLocation sets the zone naive timestamps are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *CSVStore) {
		if loc != nil {
			s.location = loc
		}
	}
}
