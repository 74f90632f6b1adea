package submit

import (
	"github.com/goliatone/go-quoteform/pkg/model"
)

// Payload is the wire body accepted by the quote endpoint. Field names are
// part of the backend contract.
type Payload struct {
	UserIPv4               string `json:"USER_ipv4"`
	UserLanguagePreference string `json:"USER_language_preference"`
	UserFirstName          string `json:"USER_first_name"`
	UserLastName           string `json:"USER_last_name"`
	UserEmail              string `json:"USER_email"`
	UserCompanyName        string `json:"USER_company_name"`
	UserCompanyVat         string `json:"USER_company_vat"`
	UserCompanyFiscalCode  string `json:"USER_company_fiscal_code"`

	FromCountry    string `json:"FROM_country"`
	FromAddress    string `json:"FROM_address"`
	FromPostalCode string `json:"FROM_postalcode"`
	FromDate       string `json:"FROM_date"`

	ToCountry    string `json:"TO_country"`
	ToAddress    string `json:"TO_address"`
	ToPostalCode string `json:"TO_postalcode"`
	ToDate       string `json:"TO_date"`

	TransportMethod           string `json:"TRANSPORT_method"`
	TransportParticularMethod string `json:"TRANSPORT_particular_method"`
	TransportMaxHeight        *int   `json:"TRANSPORT_max_height,omitempty"`

	UserNotes    string `json:"USER_notes"`
	UserSendTime string `json:"USER_sendtime"`
}

// Transform renames the record into the wire schema. Values pass through
// unchanged; the height travels as a number.
func Transform(data model.FormData) Payload {
	height := data.MaxHeight
	return Payload{
		UserIPv4:                  data.IPv4,
		UserLanguagePreference:    string(data.Language),
		UserFirstName:             data.FirstName,
		UserLastName:              data.LastName,
		UserEmail:                 data.Email,
		UserCompanyName:           data.CompanyName,
		UserCompanyVat:            data.CompanyVat,
		UserCompanyFiscalCode:     data.CompanyFiscalCode,
		FromCountry:               data.FromCountry,
		FromAddress:               data.FromAddress,
		FromPostalCode:            data.FromPostalCode,
		FromDate:                  data.FromDate,
		ToCountry:                 data.ToCountry,
		ToAddress:                 data.ToAddress,
		ToPostalCode:              data.ToPostalCode,
		ToDate:                    data.ToDate,
		TransportMethod:           string(data.Method),
		TransportParticularMethod: data.ParticularMethod,
		TransportMaxHeight:        &height,
		UserNotes:                 data.Notes,
		UserSendTime:              data.SendTime,
	}
}
