package contract

import "errors"

var (
	// ErrOperationNotFound is returned when the document lacks the operation
	// the checker was configured for.
	ErrOperationNotFound = errors.New("contract: operation not found")
	// ErrRequestSchemaMissing is returned when the operation has no JSON
	// request body schema.
	ErrRequestSchemaMissing = errors.New("contract: request body schema missing")
	// ErrInvalidPayload wraps schema violations found in an outbound body.
	ErrInvalidPayload = errors.New("contract: payload does not match request schema")
)
