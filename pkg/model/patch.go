package model

// Patch is a partial FormData. Nil fields are left untouched when the patch
// is merged, set fields overwrite the current value.
type Patch struct {
	IPv4              *string
	Language          *Language
	FirstName         *string
	LastName          *string
	Email             *string
	IsCompany         *bool
	CompanyName       *string
	CompanyVat        *string
	CompanyFiscalCode *string

	FromCountry    *string
	FromAddress    *string
	FromPostalCode *string
	FromDate       *string
	ToCountry      *string
	ToAddress      *string
	ToPostalCode   *string
	ToDate         *string

	Method           *Method
	ParticularMethod *string
	MaxHeight        *int

	Notes    *string
	SendTime *string
}

// String returns a pointer to v for use in Patch literals.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// LanguagePtr returns a pointer to v.
func LanguagePtr(v Language) *Language { return &v }

// MethodPtr returns a pointer to v.
func MethodPtr(v Method) *Method { return &v }

// Empty reports whether the patch sets no field.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Merge folds other into p, with other winning on fields both set.
func (p Patch) Merge(other Patch) Patch {
	out := p
	mergeString(&out.IPv4, other.IPv4)
	if other.Language != nil {
		out.Language = other.Language
	}
	mergeString(&out.FirstName, other.FirstName)
	mergeString(&out.LastName, other.LastName)
	mergeString(&out.Email, other.Email)
	if other.IsCompany != nil {
		out.IsCompany = other.IsCompany
	}
	mergeString(&out.CompanyName, other.CompanyName)
	mergeString(&out.CompanyVat, other.CompanyVat)
	mergeString(&out.CompanyFiscalCode, other.CompanyFiscalCode)
	mergeString(&out.FromCountry, other.FromCountry)
	mergeString(&out.FromAddress, other.FromAddress)
	mergeString(&out.FromPostalCode, other.FromPostalCode)
	mergeString(&out.FromDate, other.FromDate)
	mergeString(&out.ToCountry, other.ToCountry)
	mergeString(&out.ToAddress, other.ToAddress)
	mergeString(&out.ToPostalCode, other.ToPostalCode)
	mergeString(&out.ToDate, other.ToDate)
	if other.Method != nil {
		out.Method = other.Method
	}
	mergeString(&out.ParticularMethod, other.ParticularMethod)
	if other.MaxHeight != nil {
		out.MaxHeight = other.MaxHeight
	}
	mergeString(&out.Notes, other.Notes)
	mergeString(&out.SendTime, other.SendTime)
	return out
}

func mergeString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

// Apply returns a copy of data with every set patch field written over it.
func (p Patch) Apply(data FormData) FormData {
	applyString(&data.IPv4, p.IPv4)
	if p.Language != nil {
		data.Language = *p.Language
	}
	applyString(&data.FirstName, p.FirstName)
	applyString(&data.LastName, p.LastName)
	applyString(&data.Email, p.Email)
	if p.IsCompany != nil {
		data.IsCompany = *p.IsCompany
	}
	applyString(&data.CompanyName, p.CompanyName)
	applyString(&data.CompanyVat, p.CompanyVat)
	applyString(&data.CompanyFiscalCode, p.CompanyFiscalCode)

	applyString(&data.FromCountry, p.FromCountry)
	applyString(&data.FromAddress, p.FromAddress)
	applyString(&data.FromPostalCode, p.FromPostalCode)
	applyString(&data.FromDate, p.FromDate)
	applyString(&data.ToCountry, p.ToCountry)
	applyString(&data.ToAddress, p.ToAddress)
	applyString(&data.ToPostalCode, p.ToPostalCode)
	applyString(&data.ToDate, p.ToDate)

	if p.Method != nil {
		data.Method = *p.Method
	}
	applyString(&data.ParticularMethod, p.ParticularMethod)
	if p.MaxHeight != nil {
		data.MaxHeight = *p.MaxHeight
	}

	applyString(&data.Notes, p.Notes)
	applyString(&data.SendTime, p.SendTime)
	return data
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
