package validation

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize removes every "<...>" run from free text and trims the
// surrounding whitespace. Everything else, entities included, is kept as
// typed. Applying it twice yields the same value.
func Sanitize(raw string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(raw, ""))
}
