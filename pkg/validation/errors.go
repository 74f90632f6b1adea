package validation

import (
	"sort"
	"strings"
)

// Message keys resolved against the localized string table.
const (
	KeyRequired             = "required"
	KeyInvalidEmail         = "invalidEmail"
	KeyInvalidDate          = "invalidDate"
	KeyDateInPast           = "dateInPast"
	KeyDeliveryBeforePickup = "deliveryBeforePickup"
	KeyAtLeastOneDate       = "atLeastOneDate"
	KeyHeightTooHigh        = "heightTooHigh"
)

// Field names used as ErrorSet keys. They match the FormData JSON names.
const (
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldEmail             = "email"
	FieldCompanyName       = "companyName"
	FieldCompanyVat        = "companyVat"
	FieldCompanyFiscalCode = "companyFiscalCode"
	FieldFromCountry       = "fromCountry"
	FieldFromAddress       = "fromAddress"
	FieldFromPostalCode    = "fromPostalCode"
	FieldFromDate          = "fromDate"
	FieldToCountry         = "toCountry"
	FieldToAddress         = "toAddress"
	FieldToPostalCode      = "toPostalCode"
	FieldToDate            = "toDate"
	FieldParticularMethod  = "particularMethod"
	FieldMaxHeight         = "maxHeight"
)

// ErrorSet maps a field name to the message key describing its problem. A
// field absent from the set has no error.
type ErrorSet map[string]string

// Add records key for field. The last write for a field wins, matching the
// order rules are evaluated in.
func (e ErrorSet) Add(field, key string) {
	e[field] = key
}

// Has reports whether field carries an error.
func (e ErrorSet) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty reports whether no field failed.
func (e ErrorSet) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names sorted for stable output.
func (e ErrorSet) Fields() []string {
	out := make([]string, 0, len(e))
	for field := range e {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Err returns nil for an empty set and an *Error otherwise.
func (e ErrorSet) Err() error {
	if e.Empty() {
		return nil
	}
	return &Error{Fields: e}
}

// Error is the recoverable, field scoped failure that blocks a step from
// advancing.
type Error struct {
	Fields ErrorSet
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields.Fields() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation: " + strings.Join(parts, ", ")
}
