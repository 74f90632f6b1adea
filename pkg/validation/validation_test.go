package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

var fixedNow = time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

func newValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return fixedNow }))
}

func validShipping() model.FormData {
	data := model.DefaultFormData()
	data.FromCountry = "IT"
	data.FromAddress = "Via Roma 1"
	data.FromPostalCode = "00100"
	data.ToCountry = "DE"
	data.ToAddress = "Hauptstrasse 2"
	data.ToPostalCode = "10115"
	data.FromDate = "2026-10-20"
	data.ToDate = "2026-10-25"
	return data
}

func TestUserInfo_Required(t *testing.T) {
	got := validation.UserInfo(model.DefaultFormData())
	want := validation.ErrorSet{
		"firstName": "required",
		"lastName":  "required",
		"email":     "required",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestUserInfo_EmailScenarios(t *testing.T) {
	data := model.DefaultFormData()
	data.FirstName = "Ada"
	data.LastName = "Lovelace"

	data.Email = "bad-email"
	if got := validation.UserInfo(data)["email"]; got != "invalidEmail" {
		t.Fatalf("expected invalidEmail, got %q", got)
	}

	data.Email = "a@b.co"
	if errs := validation.UserInfo(data); errs.Has("email") {
		t.Fatalf("expected no email error, got %v", errs)
	}
}

func TestUserInfo_CompanyFields(t *testing.T) {
	data := model.DefaultFormData()
	data.FirstName = "Ada"
	data.LastName = "Lovelace"
	data.Email = "ada@example.com"
	data = validation.AccountTypePatch(true).Apply(data)
	data.CompanyVat = "private"

	got := validation.UserInfo(data)
	want := validation.ErrorSet{
		"companyName":       "required",
		"companyVat":        "required",
		"companyFiscalCode": "required",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	data.CompanyName = "Analytical Engines Ltd"
	data.CompanyVat = "IT123"
	data.CompanyFiscalCode = "FC123"
	if errs := validation.UserInfo(data); !errs.Empty() {
		t.Fatalf("expected valid company, got %v", errs)
	}
}

func TestFinalizeUserInfo_IndividualsKeepSentinel(t *testing.T) {
	data := model.DefaultFormData()
	data.FirstName = "Ada"
	data.LastName = "Lovelace"
	data.Email = "ada@example.com"
	data.CompanyName = "left over"
	data.CompanyVat = ""

	if errs := validation.UserInfo(data); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := validation.FinalizeUserInfo(data).Apply(data)
	for _, v := range []string{got.CompanyName, got.CompanyVat, got.CompanyFiscalCode} {
		if v != "private" {
			t.Fatalf("expected private sentinel, got %+v", got)
		}
	}

	data.IsCompany = true
	if !validation.FinalizeUserInfo(data).Empty() {
		t.Fatalf("company accounts should not be rewritten")
	}
}

func TestAccountTypePatch(t *testing.T) {
	company := validation.AccountTypePatch(true).Apply(model.DefaultFormData())
	if !company.IsCompany || company.CompanyName != "" || company.CompanyVat != "" || company.CompanyFiscalCode != "" {
		t.Fatalf("company switch did not clear fields: %+v", company)
	}
	individual := validation.AccountTypePatch(false).Apply(company)
	if individual.IsCompany || individual.CompanyName != "private" {
		t.Fatalf("individual switch did not sentinel fields: %+v", individual)
	}
}

func TestShipping_Valid(t *testing.T) {
	if errs := newValidator().Shipping(validShipping(), validation.ShippingInput{}); !errs.Empty() {
		t.Fatalf("expected valid shipping, got %v", errs)
	}
}

func TestShipping_RequiredFields(t *testing.T) {
	data := model.DefaultFormData()
	data.FromDate = "2026-10-17"
	got := newValidator().Shipping(data, validation.ShippingInput{})
	want := validation.ErrorSet{
		"fromCountry":    "required",
		"fromAddress":    "required",
		"fromPostalCode": "required",
		"toCountry":      "required",
		"toAddress":      "required",
		"toPostalCode":   "required",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestShipping_OtherCountryNeedsOverride(t *testing.T) {
	data := validShipping()
	data.FromCountry = model.OtherCountryCode
	v := newValidator()

	if got := v.Shipping(data, validation.ShippingInput{FromCountryOther: "  "}); got["fromCountry"] != "required" {
		t.Fatalf("expected required for blank override, got %v", got)
	}
	input := validation.ShippingInput{FromCountryOther: " Atlantis "}
	if errs := v.Shipping(data, input); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := validation.FinalizeShipping(data, input).Apply(data)
	if got.FromCountry != "Atlantis" {
		t.Fatalf("expected override to replace country, got %q", got.FromCountry)
	}
}

func TestShipping_NoDatesFailsOnBoth(t *testing.T) {
	data := validShipping()
	data.FromDate = ""
	data.ToDate = ""
	got := newValidator().Shipping(data, validation.ShippingInput{})
	want := validation.ErrorSet{"fromDate": "atLeastOneDate", "toDate": "atLeastOneDate"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestShipping_DateInPast(t *testing.T) {
	data := validShipping()
	data.FromDate = "2026-10-16"
	data.ToDate = "2026-10-17"
	got := newValidator().Shipping(data, validation.ShippingInput{})
	want := validation.ErrorSet{"fromDate": "dateInPast"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestShipping_InvalidDate(t *testing.T) {
	data := validShipping()
	data.ToDate = "25/10/2026"
	got := newValidator().Shipping(data, validation.ShippingInput{})
	if got["toDate"] != "invalidDate" {
		t.Fatalf("expected invalidDate, got %v", got)
	}
}

func TestShipping_DateOrderProperty(t *testing.T) {
	v := newValidator()
	base := fixedNow
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			data := validShipping()
			from := base.AddDate(0, 0, i)
			to := base.AddDate(0, 0, j)
			data.FromDate = from.Format(validation.DateLayout)
			data.ToDate = to.Format(validation.DateLayout)

			errs := v.Shipping(data, validation.ShippingInput{})
			wantFail := j < i
			if gotFail := errs["toDate"] == "deliveryBeforePickup"; gotFail != wantFail {
				t.Fatalf("from=%s to=%s: fail=%v want %v (%v)", data.FromDate, data.ToDate, gotFail, wantFail, errs)
			}
			if !wantFail && !errs.Empty() {
				t.Fatalf("from=%s to=%s: unexpected errors %v", data.FromDate, data.ToDate, errs)
			}
		}
	}
}

func TestFinalizeShipping_Sentinels(t *testing.T) {
	data := validShipping()
	data.ToDate = ""
	got := validation.FinalizeShipping(data, validation.ShippingInput{}).Apply(data)
	if got.FromDate != "2026-10-20" || got.ToDate != "only FROM date" {
		t.Fatalf("unexpected dates: %q / %q", got.FromDate, got.ToDate)
	}

	data = validShipping()
	data.FromDate = ""
	got = validation.FinalizeShipping(data, validation.ShippingInput{}).Apply(data)
	if got.FromDate != "only TO date" || got.ToDate != "2026-10-25" {
		t.Fatalf("unexpected dates: %q / %q", got.FromDate, got.ToDate)
	}

	// A record already carrying a sentinel validates as a single-date schedule.
	if errs := newValidator().Shipping(got, validation.ShippingInput{}); !errs.Empty() {
		t.Fatalf("sentinel record should revalidate, got %v", errs)
	}
}

func TestLandAndShip(t *testing.T) {
	data := model.DefaultFormData()
	if got := validation.Land(data); got["particularMethod"] != "required" {
		t.Fatalf("expected required, got %v", got)
	}
	data.ParticularMethod = "Express/Other"
	if errs := validation.Land(data); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := validation.Ship(data); errs.Empty() {
		t.Fatalf("land option should not satisfy ship")
	}
	data.ParticularMethod = "LCL"
	if errs := validation.Ship(data); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestPlane_Rules(t *testing.T) {
	data := model.DefaultFormData()
	got := validation.Plane(data)
	want := validation.ErrorSet{"maxHeight": "required", "particularMethod": "required"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	data.MaxHeight = 200
	data.ParticularMethod = "PAX"
	if got := validation.Plane(data); got["particularMethod"] != "heightTooHigh" {
		t.Fatalf("expected heightTooHigh, got %v", got)
	}

	data.MaxHeight = 159
	if errs := validation.Plane(data); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestApplyHeight_ClearsPAX(t *testing.T) {
	data := model.DefaultFormData()
	data = validation.ApplyHeight(data, "120").Apply(data)
	data = validation.SelectPlaneOption(data, "PAX").Apply(data)
	if data.ParticularMethod != "PAX" {
		t.Fatalf("PAX should be selectable at 120cm")
	}

	data = validation.ApplyHeight(data, "16o cm").Apply(data)
	if data.MaxHeight != 16 || data.ParticularMethod != "PAX" {
		t.Fatalf("non digits should be dropped: %+v", data)
	}

	data = validation.ApplyHeight(data, "160").Apply(data)
	if data.MaxHeight != 160 || data.ParticularMethod != "" {
		t.Fatalf("PAX should be cleared at 160cm: %+v", data)
	}

	if !validation.SelectPlaneOption(data, "PAX").Empty() {
		t.Fatalf("PAX must not be selectable at 160cm")
	}
	data = validation.SelectPlaneOption(data, "CARGO").Apply(data)
	data = validation.ApplyHeight(data, "300").Apply(data)
	if data.ParticularMethod != "CARGO" {
		t.Fatalf("non PAX selection should survive height change")
	}
}

func TestParseHeight(t *testing.T) {
	cases := map[string]int{"": 0, "abc": 0, "42": 42, " 1 2 0 ": 120, "-5": 5}
	for in, want := range cases {
		if got := validation.ParseHeight(in); got != want {
			t.Errorf("ParseHeight(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestTypeNotes_RejectsBeyondLimit(t *testing.T) {
	typed := strings.Repeat("a", 499) + "bc"
	got := validation.ClampNotes(typed)
	if validation.NotesLength(got) != 500 {
		t.Fatalf("expected 500 characters, got %d", validation.NotesLength(got))
	}
	if want := strings.Repeat("a", 499) + "b"; got != want {
		t.Fatalf("expected first 500 typed characters")
	}
	if again := validation.TypeNotes(got, "more"); again != got {
		t.Fatalf("full notes should reject further typing")
	}

	multi := strings.Repeat("货", 501)
	if n := validation.NotesLength(validation.ClampNotes(multi)); n != 500 {
		t.Fatalf("expected rune based clamp, got %d", n)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"  <b>Ada</b>  ":                  "Ada",
		"AT&T Logistics":                  "AT&T Logistics",
		"Via <i>Roma</i> 1":               "Via Roma 1",
		"   ":                             "",
		"plain":                           "plain",
		"<script>alert(1)</script>Milano": "alert(1)Milano",
		"a<b":                             "a<b",
		"AT&amp;T":                        "AT&amp;T",
		"a &lt;b&gt; c":                   "a &lt;b&gt; c",
		"&amp;lt;b&amp;gt;":               "&amp;lt;b&amp;gt;",
		"a<<b>>c":                         "a>c",
		"20121 <br/>":                     "20121",
		"  2 > 1 pallets  ":               "2 > 1 pallets",
	}
	for in, want := range cases {
		got := validation.Sanitize(in)
		if got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
		if again := validation.Sanitize(got); again != got {
			t.Errorf("Sanitize not stable for %q: %q then %q", in, got, again)
		}
	}
}

func TestValidatorStepDispatch(t *testing.T) {
	v := newValidator()
	data := model.DefaultFormData()
	if errs := v.Step(model.StepNotes, data, validation.ShippingInput{}); !errs.Empty() {
		t.Fatalf("notes has no hard validation, got %v", errs)
	}
	if errs := v.Step(model.StepUserInfo, data, validation.ShippingInput{}); errs.Empty() {
		t.Fatalf("expected user-info errors")
	}
	err := v.Step(model.StepPlane, data, validation.ShippingInput{}).Err()
	if err == nil || !strings.Contains(err.Error(), "maxHeight: required") {
		t.Fatalf("expected validation error, got %v", err)
	}
}
