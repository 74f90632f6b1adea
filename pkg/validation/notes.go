package validation

import (
	"unicode/utf8"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// TypeNotes appends typed to current one character at a time, dropping every
// character that would push the notes past the limit.
func TypeNotes(current, typed string) string {
	count := utf8.RuneCountInString(current)
	if count >= model.MaxNotesLength {
		return current
	}
	buf := []rune(current)
	for _, r := range typed {
		if count >= model.MaxNotesLength {
			break
		}
		buf = append(buf, r)
		count++
	}
	return string(buf)
}

// ClampNotes returns the first characters of value that fit the limit.
func ClampNotes(value string) string {
	return TypeNotes("", value)
}

// NotesLength reports the number of characters counted against the limit.
func NotesLength(value string) int {
	return utf8.RuneCountInString(value)
}
