package console

import "errors"

// Sentinel kinds for console errors.
var (
	// ErrInputClosed means the input stream ended before a valid answer.
	ErrInputClosed = errors.New("input closed")
)
