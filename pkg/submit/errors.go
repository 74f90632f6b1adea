package submit

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when the request exceeds the configured bound.
	ErrTimeout = errors.New("submit: request timed out")
	// ErrSubmissionInFlight is returned when a submission is attempted while a
	// previous one has not finished.
	ErrSubmissionInFlight = errors.New("submit: submission already in flight")
	// ErrEndpointRequired is returned when the client has no endpoint.
	ErrEndpointRequired = errors.New("submit: endpoint is required")
)

// TransportError covers network failures, non-2xx statuses, unreadable
// bodies and payloads rejected by the local contract check.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submit: http status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("submit: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BusinessError is a well-formed response whose status is not "success".
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return "submit: rejected: " + e.Message
}
