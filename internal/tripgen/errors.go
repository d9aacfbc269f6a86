package tripgen

import "errors"

var (
	// ErrInvalidConfig is returned when the generator configuration is unusable.
	ErrInvalidConfig = errors.New("invalid generator config")
	// ErrVerification is returned when a written file does not read back as generated.
	ErrVerification = errors.New("verification failed")
)
