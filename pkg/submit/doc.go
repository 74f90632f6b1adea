// Package submit converts the wizard record into the quote endpoint's wire
// schema and performs the single POST that ends a session. Outcomes are
// classified as success, timeout, transport failure or business rejection so
// the notes step can show the matching localized message and stay put.
package submit
