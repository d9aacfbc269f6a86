package app

import "errors"

var (
	// ErrLoad is returned when the selected city's data cannot be loaded.
	ErrLoad = errors.New("data load failed")
	// ErrTerminated is returned when Run is called on a finished session.
	ErrTerminated = errors.New("session terminated")
)
