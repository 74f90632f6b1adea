package validation

import (
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Validator runs the per-step rules. The zero value is usable and reads the
// wall clock.
type Validator struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used for "not in the past" checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New constructs a Validator.
func New(options ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

func (v *Validator) clock() time.Time {
	if v == nil || v.now == nil {
		return time.Now()
	}
	return v.now()
}

// ShippingInput carries the free-text overrides typed when a country is set
// to OTHER. They live outside the record until the step is submitted.
type ShippingInput struct {
	FromCountryOther string
	ToCountryOther   string
}

// Step validates the fields owned by step. Steps without rules return an
// empty set.
func (v *Validator) Step(step model.Step, data model.FormData, input ShippingInput) ErrorSet {
	switch step {
	case model.StepUserInfo:
		return UserInfo(data)
	case model.StepShipping:
		return v.Shipping(data, input)
	case model.StepLand:
		return Land(data)
	case model.StepShip:
		return Ship(data)
	case model.StepPlane:
		return Plane(data)
	default:
		return ErrorSet{}
	}
}

// UserInfo checks identity fields. Company fields are only required for
// company accounts and may not keep the "private" sentinel.
func UserInfo(data model.FormData) ErrorSet {
	errs := ErrorSet{}
	if strings.TrimSpace(data.FirstName) == "" {
		errs.Add(FieldFirstName, KeyRequired)
	}
	if strings.TrimSpace(data.LastName) == "" {
		errs.Add(FieldLastName, KeyRequired)
	}
	switch {
	case strings.TrimSpace(data.Email) == "":
		errs.Add(FieldEmail, KeyRequired)
	case !ValidEmail(data.Email):
		errs.Add(FieldEmail, KeyInvalidEmail)
	}

	if data.IsCompany {
		requireCompanyField(errs, FieldCompanyName, data.CompanyName)
		requireCompanyField(errs, FieldCompanyVat, data.CompanyVat)
		requireCompanyField(errs, FieldCompanyFiscalCode, data.CompanyFiscalCode)
	}
	return errs
}

func requireCompanyField(errs ErrorSet, field, value string) {
	if strings.TrimSpace(value) == "" || value == model.PrivateSentinel {
		errs.Add(field, KeyRequired)
	}
}

// FinalizeUserInfo returns the patch applied once user info validates:
// individuals get the "private" sentinel in every company field.
func FinalizeUserInfo(data model.FormData) model.Patch {
	if data.IsCompany {
		return model.Patch{}
	}
	return AccountTypePatch(false)
}

// AccountTypePatch switches between individual and company accounts. Company
// fields are cleared for typing, or reset to the sentinel for individuals.
func AccountTypePatch(isCompany bool) model.Patch {
	value := model.PrivateSentinel
	if isCompany {
		value = ""
	}
	return model.Patch{
		IsCompany:         model.Bool(isCompany),
		CompanyName:       model.String(value),
		CompanyVat:        model.String(value),
		CompanyFiscalCode: model.String(value),
	}
}

// Shipping checks both endpoints and the schedule.
func (v *Validator) Shipping(data model.FormData, input ShippingInput) ErrorSet {
	errs := ErrorSet{}

	requireCountry(errs, FieldFromCountry, data.FromCountry, input.FromCountryOther)
	requireText(errs, FieldFromAddress, data.FromAddress)
	requireText(errs, FieldFromPostalCode, data.FromPostalCode)
	requireCountry(errs, FieldToCountry, data.ToCountry, input.ToCountryOther)
	requireText(errs, FieldToAddress, data.ToAddress)
	requireText(errs, FieldToPostalCode, data.ToPostalCode)

	now := v.clock()
	schedule := ScheduleOf(data)
	if schedule.Kind == ScheduleNone {
		errs.Add(FieldFromDate, KeyAtLeastOneDate)
		errs.Add(FieldToDate, KeyAtLeastOneDate)
		return errs
	}

	from, fromOK := checkDate(errs, FieldFromDate, schedule.From, now)
	to, toOK := checkDate(errs, FieldToDate, schedule.To, now)
	if schedule.Kind == ScheduleBoth && fromOK && toOK && !InOrder(from, to) {
		errs.Add(FieldToDate, KeyDeliveryBeforePickup)
	}
	return errs
}

func checkDate(errs ErrorSet, field, raw string, now time.Time) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	date, err := ParseDate(raw, now.Location())
	if err != nil {
		errs.Add(field, KeyInvalidDate)
		return time.Time{}, false
	}
	if !NotInPast(date, now) {
		errs.Add(field, KeyDateInPast)
	}
	return date, true
}

func requireCountry(errs ErrorSet, field, code, other string) {
	if strings.TrimSpace(code) == "" {
		errs.Add(field, KeyRequired)
		return
	}
	if code == model.OtherCountryCode && strings.TrimSpace(other) == "" {
		errs.Add(field, KeyRequired)
	}
}

func requireText(errs ErrorSet, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, KeyRequired)
	}
}

// FinalizeShipping returns the patch applied once shipping validates: OTHER
// countries are replaced by their typed names and a missing date is replaced
// by the sentinel naming the date that was given.
func FinalizeShipping(data model.FormData, input ShippingInput) model.Patch {
	patch := ScheduleOf(data).Patch()
	if data.FromCountry == model.OtherCountryCode {
		patch.FromCountry = model.String(Sanitize(input.FromCountryOther))
	}
	if data.ToCountry == model.OtherCountryCode {
		patch.ToCountry = model.String(Sanitize(input.ToCountryOther))
	}
	return patch
}

// Land checks the land sub-option.
func Land(data model.FormData) ErrorSet {
	return particular(data, model.MethodLand)
}

// Ship checks the ocean sub-option.
func Ship(data model.FormData) ErrorSet {
	return particular(data, model.MethodShip)
}

func particular(data model.FormData, method model.Method) ErrorSet {
	errs := ErrorSet{}
	if !contains(model.ParticularOptions(method), data.ParticularMethod) {
		errs.Add(FieldParticularMethod, KeyRequired)
	}
	return errs
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
