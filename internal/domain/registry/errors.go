package registry

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrUnknownCity = errors.New("unknown city")
)
