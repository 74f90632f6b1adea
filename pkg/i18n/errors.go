package i18n

import "errors"

var (
	// ErrMissingTranslator is reported to MissingHandler when no catalog was
	// configured.
	ErrMissingTranslator = errors.New("i18n: translator is not configured")
	// ErrMissingKey is returned when a key is absent for the requested and
	// fallback languages.
	ErrMissingKey = errors.New("i18n: missing translation")
)
