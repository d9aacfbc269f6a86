package paginator

import (
	"io"

	"github.com/okian/bikeshare/pkg/logger"
)

// Option applies a configuration option to the Paginator.
type Option func(*Paginator)

// WithPageSize sets the number of rows per page. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(p *Paginator) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

// WithOutput sets the writer pages are printed to.
func WithOutput(w io.Writer) Option {
	return func(p *Paginator) {
		if w != nil {
			p.out = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Paginator) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithObserver registers a callback receiving the number of rows of each printed page.
func WithObserver(observe func(rows int)) Option {
	return func(p *Paginator) {
		if observe != nil {
			p.observe = observe
		}
	}
}
