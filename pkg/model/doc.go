// Package model defines the quote request record shared by every wizard step:
// the FormData value, the Patch type used to merge partial edits into it, the
// closed Step and Method enumerations, and the bundled country list. Sentinel
// strings ("private", "only TO date", "only FROM date") are part of the
// record's contract with the quote backend and are exported here so callers
// never spell them by hand.
package model
