package repository

import "errors"

// Sentinel kinds for load errors.
var (
	// ErrSourceUnavailable means the city file is missing or unreadable.
	ErrSourceUnavailable = errors.New("trip data source unavailable")
	// ErrMalformedSource means the file could not be parsed into trips.
	ErrMalformedSource = errors.New("malformed trip data")
)
