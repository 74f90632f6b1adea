package config

import "errors"

var (
	// ErrInvalidBaseURL is returned when the backend URL is not absolute.
	ErrInvalidBaseURL = errors.New("config: api base url must be absolute")
	// ErrInvalidDuration is returned for non-positive timeouts or negative delays.
	ErrInvalidDuration = errors.New("config: invalid duration")
)
