package wizard

import "errors"

var (
	// ErrUnknownStep is returned when advancing to a step outside the enum.
	ErrUnknownStep = errors.New("wizard: unknown step")
	// ErrUnknownMethod is returned when selecting an unsupported method.
	ErrUnknownMethod = errors.New("wizard: unknown transport method")
	// ErrUnknownLanguage is returned when selecting an unsupported language.
	ErrUnknownLanguage = errors.New("wizard: unknown language")
)
