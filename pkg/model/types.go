package model

// Language identifies the preferred language of the requester.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageIT Language = "IT"
	LanguageCN Language = "CN"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageEN, LanguageIT, LanguageCN}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguageIT, LanguageCN:
		return true
	default:
		return false
	}
}

// Method is the transport family chosen at the transport step.
type Method string

const (
	MethodLand      Method = "LAND"
	MethodShip      Method = "SHIP"
	MethodPlane     Method = "PLANE"
	MethodLogistics Method = "LOGISTICS"
)

// Methods lists the transport methods in display order.
var Methods = []Method{MethodLand, MethodShip, MethodPlane, MethodLogistics}

// Valid reports whether m is one of the supported transport methods.
func (m Method) Valid() bool {
	switch m {
	case MethodLand, MethodShip, MethodPlane, MethodLogistics:
		return true
	default:
		return false
	}
}

// Sentinel values stored in place of empty data so the backend can tell an
// intentional omission from a missing field.
const (
	PrivateSentinel  = "private"
	OnlyToDate       = "only TO date"
	OnlyFromDate     = "only FROM date"
	OtherCountryCode = "OTHER"
)

// Particular transport options per method.
const (
	LandFTL          = "FTL"
	LandLTL          = "LTL"
	LandExpressOther = "Express/Other"

	ShipFCL = "FCL"
	ShipLCL = "LCL"

	PlaneCargo = "CARGO"
	PlanePAX   = "PAX"

	OptionOther = "Other"
)

// MaxNotesLength caps the notes field, counted in characters.
const MaxNotesLength = 500

// PAXMaxHeight is the first height (cm) at which PAX is no longer available.
const PAXMaxHeight = 160

// FormData is the single record accumulated across the wizard session. JSON
// tags follow the camelCase names used by the step views.
type FormData struct {
	IPv4              string   `json:"ipv4"`
	Language          Language `json:"language"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	IsCompany         bool     `json:"isCompany"`
	CompanyName       string   `json:"companyName"`
	CompanyVat        string   `json:"companyVat"`
	CompanyFiscalCode string   `json:"companyFiscalCode"`

	FromCountry    string `json:"fromCountry"`
	FromAddress    string `json:"fromAddress"`
	FromPostalCode string `json:"fromPostalCode"`
	FromDate       string `json:"fromDate"`
	ToCountry      string `json:"toCountry"`
	ToAddress      string `json:"toAddress"`
	ToPostalCode   string `json:"toPostalCode"`
	ToDate         string `json:"toDate"`

	Method           Method `json:"method"`
	ParticularMethod string `json:"particularMethod"`
	MaxHeight        int    `json:"maxHeight"`

	Notes    string `json:"notes"`
	SendTime string `json:"sendTime"`
}

// DefaultFormData returns the record a fresh session starts from.
func DefaultFormData() FormData {
	return FormData{
		Language:          LanguageEN,
		CompanyName:       PrivateSentinel,
		CompanyVat:        PrivateSentinel,
		CompanyFiscalCode: PrivateSentinel,
		Method:            MethodLand,
	}
}

// ParticularOptions returns the selectable sub-options for a method. The
// LOGISTICS method has no detail step and therefore no options.
func ParticularOptions(method Method) []string {
	switch method {
	case MethodLand:
		return []string{LandFTL, LandLTL, LandExpressOther}
	case MethodShip:
		return []string{ShipFCL, ShipLCL, OptionOther}
	case MethodPlane:
		return []string{PlaneCargo, PlanePAX, OptionOther}
	default:
		return nil
	}
}
