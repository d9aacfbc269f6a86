package app

import (
	"io"
	"time"

	"github.com/okian/bikeshare/pkg/logger"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithOutput sets the writer the farewell message is printed to.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator sets the source of session pass ids.
func WithIDGenerator(next func() string) Option {
	return func(s *Session) {
		if next != nil {
			s.nextID = next
		}
	}
}

// LoaderOption applies a configuration option to the Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets a custom logger for the loader.
func WithLoaderLogger(l logger.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithLoaderClock sets the time source used to measure loads.
func WithLoaderClock(now func() time.Time) LoaderOption {
	return func(ld *Loader) {
		if now != nil {
			ld.now = now
		}
	}
}
