// Package validation holds the per-step rules that gate forward navigation in
// the quote wizard. Validators are pure: they read a model.FormData and return
// an ErrorSet keyed by field name whose values are message keys for the
// localized string table. The package also owns the entry-time helpers that
// shape values before they reach the record (Sanitize, TypeNotes, ApplyHeight)
// and the finalize patches applied when a step validates.
package validation
