package console

import (
	"io"

	"github.com/okian/bikeshare/pkg/logger"
)

// Option applies a configuration option to the Prompter.
type Option func(*Prompter)

// WithInput sets the reader answers are read from.
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		if r != nil {
			p.in = newLineReader(r)
		}
	}
}

// WithOutput sets the writer prompts are printed to.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		if w != nil {
			p.out = w
		}
	}
}

// WithLogger sets the logger for rejected input diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(p *Prompter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithInvalidHook registers a callback run for every rejected answer,
// receiving the question's field name.
func WithInvalidHook(hook func(field string)) Option {
	return func(p *Prompter) {
		if hook != nil {
			p.onInvalid = hook
		}
	}
}
