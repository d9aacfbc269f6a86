package report

import (
	"io"
	"time"

	"github.com/okian/bikeshare/pkg/logger"
)

// Option applies a configuration option to the Reporter.
type Option func(*Reporter)

// WithOutput sets the writer reports are printed to.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithClock sets the time source used for "This took" lines.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers a callback receiving each reporter's name and
// duration, e.g. to feed a histogram.
func WithObserver(observe func(reporter string, elapsed time.Duration)) Option {
	return func(r *Reporter) {
		if observe != nil {
			r.observe = observe
		}
	}
}
