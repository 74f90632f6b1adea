package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSelection is returned when a prompt driver reports an option
	// outside the offered list.
	ErrNoSelection = errors.New("tui: selection out of range")
)
