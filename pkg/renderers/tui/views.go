package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/iplookup"
	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/submit"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

type action int

const (
	actionNext action = iota
	actionBack
)

var languageLabels = map[model.Language]string{
	model.LanguageEN: "English",
	model.LanguageIT: "Italiano",
	model.LanguageCN: "中文",
}

var methodKeys = map[model.Method]string{
	model.MethodLand:      "byLand",
	model.MethodShip:      "byShip",
	model.MethodPlane:     "byPlane",
	model.MethodLogistics: "logistics",
}

var optionKeys = map[string]string{
	model.LandFTL:          "ftl",
	model.LandLTL:          "ltl",
	model.LandExpressOther: "express",
	model.ShipFCL:          "fcl",
	model.ShipLCL:          "lcl",
	model.PlaneCargo:       "cargo",
	model.PlanePAX:         "pax",
	model.OptionOther:      "other",
}

type fieldLabel struct {
	section string
	key     string
}

var fieldLabels = map[string]fieldLabel{
	validation.FieldFirstName:         {key: "firstName"},
	validation.FieldLastName:          {key: "lastName"},
	validation.FieldEmail:             {key: "email"},
	validation.FieldCompanyName:       {key: "companyName"},
	validation.FieldCompanyVat:        {key: "vatNumber"},
	validation.FieldCompanyFiscalCode: {key: "fiscalCode"},
	validation.FieldFromCountry:       {section: "pickupInfo", key: "country"},
	validation.FieldFromAddress:       {section: "pickupInfo", key: "address"},
	validation.FieldFromPostalCode:    {section: "pickupInfo", key: "postalCode"},
	validation.FieldFromDate:          {key: "fromDate"},
	validation.FieldToCountry:         {section: "deliveryInfo", key: "country"},
	validation.FieldToAddress:         {section: "deliveryInfo", key: "address"},
	validation.FieldToPostalCode:      {section: "deliveryInfo", key: "postalCode"},
	validation.FieldToDate:            {key: "toDate"},
	validation.FieldParticularMethod:  {key: "transportMethod"},
	validation.FieldMaxHeight:         {key: "maxHeight"},
}

func (r *Renderer) heading(ctx context.Context, loc i18n.Localizer, step model.Step) error {
	title := r.theme.InfoPrefix + step.Title()
	if pos := step.Position(); pos > 0 {
		title = fmt.Sprintf("%s (%s %d %s %d)", title, loc.T("step"), pos, loc.T("of"), model.TotalSteps)
	}
	return r.driver.Info(ctx, title)
}

func (r *Renderer) input(ctx context.Context, label, def, help string) (string, error) {
	resp, err := r.driver.Input(ctx, InputConfig{
		Message: r.theme.PromptPrefix + label,
		Default: def,
		Help:    help,
	})
	if err != nil {
		return "", err
	}
	return validation.Sanitize(resp), nil
}

// choose asks for one of options and rejects indices the driver should never
// produce.
func (r *Renderer) choose(ctx context.Context, cfg SelectConfig) (int, error) {
	cfg.Message = r.theme.PromptPrefix + cfg.Message
	idx, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(cfg.Options) {
		return 0, fmt.Errorf("%w: %d", ErrNoSelection, idx)
	}
	return idx, nil
}

func (r *Renderer) action(ctx context.Context, loc i18n.Localizer, primaryKey string) (action, error) {
	idx, err := r.choose(ctx, SelectConfig{
		Message: loc.T("chooseAction"),
		Options: []string{loc.T(primaryKey), loc.T("actionBack")},
	})
	if err != nil {
		return actionNext, err
	}
	if idx == 1 {
		return actionBack, nil
	}
	return actionNext, nil
}

func (r *Renderer) showErrors(ctx context.Context, loc i18n.Localizer, errs validation.ErrorSet) error {
	if err := r.driver.Info(ctx, r.theme.ErrorPrefix+loc.T("fillAllFields")); err != nil {
		return err
	}
	for _, field := range errs.Fields() {
		label := field
		if fl, ok := fieldLabels[field]; ok {
			label = loc.T(fl.key)
			if fl.section != "" {
				label = loc.T(fl.section) + " / " + label
			}
		}
		msg := fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, label, loc.T(errs[field]))
		if err := r.driver.Info(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) splash(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepSplash); err != nil {
		return err
	}

	lookupCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	result := make(chan string, 1)
	go func() {
		result <- r.resolver.Lookup(lookupCtx)
	}()

	var ip string
	if r.splashDuration <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ip = <-result:
		}
	} else {
		var err error
		ip, err = r.animate(ctx, loc, result)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(ip) == "" {
		ip = iplookup.Unknown
	}
	w.CompleteSplash(ip)
	return nil
}

// animate advances the splash bar one percent per tick. The lookup result is
// taken if it arrived before the bar completes.
func (r *Renderer) animate(ctx context.Context, loc i18n.Localizer, result <-chan string) (string, error) {
	tick := r.splashDuration / 100
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	label := loc.T("gettingReady")
	ip, resolved := "", false
	for percent := 0; percent < 100; {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case v := <-result:
			ip, resolved = v, true
			result = nil
		case <-ticker.C:
			percent++
			if err := r.driver.Progress(ctx, label, percent); err != nil {
				return "", err
			}
		}
	}
	if !resolved {
		select {
		case ip = <-result:
		default:
			r.logger.Printf("tui: address lookup still pending after splash")
			ip = iplookup.Unknown
		}
	}
	return ip, nil
}

func (r *Renderer) language(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepLanguage); err != nil {
		return err
	}
	current := w.Data().Language
	options := make([]string, len(model.Languages))
	def := 0
	for i, lang := range model.Languages {
		options[i] = languageLabels[lang]
		if lang == current {
			def = i
		}
	}
	idx, err := r.choose(ctx, SelectConfig{
		Message:      loc.T("selectLanguage"),
		Help:         loc.T("choosePreferred"),
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	return w.SelectLanguage(model.Languages[idx])
}

func (r *Renderer) userInfo(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepUserInfo); err != nil {
		return err
	}
	data := w.Data()

	first, err := r.input(ctx, loc.T("firstName"), data.FirstName, "")
	if err != nil {
		return err
	}
	last, err := r.input(ctx, loc.T("lastName"), data.LastName, "")
	if err != nil {
		return err
	}
	email, err := r.input(ctx, loc.T("email"), data.Email, "")
	if err != nil {
		return err
	}
	w.Update(model.Patch{
		FirstName: model.String(first),
		LastName:  model.String(last),
		Email:     model.String(email),
	})

	def := 0
	if data.IsCompany {
		def = 1
	}
	idx, err := r.choose(ctx, SelectConfig{
		Message:      loc.T("accountType"),
		Options:      []string{loc.T("individual"), loc.T("company")},
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	isCompany := idx == 1
	if isCompany != data.IsCompany {
		w.Update(validation.AccountTypePatch(isCompany))
	}

	if isCompany {
		data = w.Data()
		name, err := r.input(ctx, loc.T("companyName"), companyDefault(data.CompanyName), "")
		if err != nil {
			return err
		}
		vat, err := r.input(ctx, loc.T("vatNumber"), companyDefault(data.CompanyVat), "")
		if err != nil {
			return err
		}
		fiscal, err := r.input(ctx, loc.T("fiscalCode"), companyDefault(data.CompanyFiscalCode), "")
		if err != nil {
			return err
		}
		w.Update(model.Patch{
			CompanyName:       model.String(name),
			CompanyVat:        model.String(vat),
			CompanyFiscalCode: model.String(fiscal),
		})
	}

	act, err := r.action(ctx, loc, "actionNext")
	if err != nil {
		return err
	}
	if act == actionBack {
		w.GoBack()
		return nil
	}

	data = w.Data()
	if errs := r.validator.Step(model.StepUserInfo, data, r.state.Shipping); !errs.Empty() {
		return r.showErrors(ctx, loc, errs)
	}
	w.Update(validation.FinalizeUserInfo(data))
	return w.Advance(model.StepShipping)
}

func companyDefault(value string) string {
	if value == model.PrivateSentinel {
		return ""
	}
	return value
}

type endpoint struct {
	country string
	other   string
	address string
	postal  string
	date    string
}

func (r *Renderer) shipping(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepShipping); err != nil {
		return err
	}
	data := w.Data()
	schedule := validation.ScheduleOf(data)

	from, err := r.endpoint(ctx, loc, "pickupInfo", "fromDate", endpoint{
		country: data.FromCountry,
		other:   r.state.Shipping.FromCountryOther,
		address: data.FromAddress,
		postal:  data.FromPostalCode,
		date:    schedule.From,
	})
	if err != nil {
		return err
	}
	to, err := r.endpoint(ctx, loc, "deliveryInfo", "toDate", endpoint{
		country: data.ToCountry,
		other:   r.state.Shipping.ToCountryOther,
		address: data.ToAddress,
		postal:  data.ToPostalCode,
		date:    schedule.To,
	})
	if err != nil {
		return err
	}

	r.state.Shipping = validation.ShippingInput{FromCountryOther: from.other, ToCountryOther: to.other}
	w.Update(model.Patch{
		FromCountry:    model.String(from.country),
		FromAddress:    model.String(from.address),
		FromPostalCode: model.String(from.postal),
		FromDate:       model.String(from.date),
		ToCountry:      model.String(to.country),
		ToAddress:      model.String(to.address),
		ToPostalCode:   model.String(to.postal),
		ToDate:         model.String(to.date),
	})

	act, err := r.action(ctx, loc, "actionNext")
	if err != nil {
		return err
	}
	if act == actionBack {
		w.GoBack()
		return nil
	}

	data = w.Data()
	if errs := r.validator.Step(model.StepShipping, data, r.state.Shipping); !errs.Empty() {
		return r.showErrors(ctx, loc, errs)
	}
	w.Update(validation.FinalizeShipping(data, r.state.Shipping))
	return w.Advance(model.StepTransport)
}

func (r *Renderer) endpoint(ctx context.Context, loc i18n.Localizer, sectionKey, dateKey string, current endpoint) (endpoint, error) {
	if err := r.driver.Info(ctx, loc.T(sectionKey)); err != nil {
		return endpoint{}, err
	}

	lang := loc.Language
	options := make([]string, len(r.countries))
	def, otherIdx := -1, -1
	for i, c := range r.countries {
		options[i] = c.DisplayName(lang)
		if c.Code == current.country {
			def = i
		}
		if c.Code == model.OtherCountryCode {
			otherIdx = i
		}
	}
	otherDefault := current.other
	if def < 0 && current.country != "" && otherIdx >= 0 {
		// A stored free-text country came from a previous OTHER override.
		def = otherIdx
		if otherDefault == "" {
			otherDefault = current.country
		}
	}

	idx, err := r.choose(ctx, SelectConfig{
		Message:      loc.T("country"),
		Help:         loc.T("searchCountries"),
		Options:      options,
		DefaultIndex: def,
		PageSize:     10,
	})
	if err != nil {
		return endpoint{}, err
	}
	out := endpoint{country: r.countries[idx].Code}
	if out.country == model.OtherCountryCode {
		if out.other, err = r.input(ctx, loc.T("specifyCountry"), otherDefault, ""); err != nil {
			return endpoint{}, err
		}
	}
	if out.address, err = r.input(ctx, loc.T("address"), current.address, ""); err != nil {
		return endpoint{}, err
	}
	if out.postal, err = r.input(ctx, loc.T("postalCode"), current.postal, ""); err != nil {
		return endpoint{}, err
	}
	if out.date, err = r.input(ctx, loc.T(dateKey), current.date, loc.T("dateHint")); err != nil {
		return endpoint{}, err
	}
	return out, nil
}

func (r *Renderer) transport(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepTransport); err != nil {
		return err
	}
	current := w.Data().Method
	options := make([]string, 0, len(model.Methods)+1)
	def := 0
	for i, m := range model.Methods {
		options = append(options, loc.T(methodKeys[m]))
		if m == current {
			def = i
		}
	}
	options = append(options, loc.T("actionBack"))

	idx, err := r.choose(ctx, SelectConfig{
		Message:      loc.T("transportMethod"),
		Help:         loc.T("selectTransport"),
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	if idx == len(model.Methods) {
		w.GoBack()
		return nil
	}
	_, err = w.SelectMethod(model.Methods[idx])
	return err
}

// particular handles the land and ship steps, which only pick a sub-option.
func (r *Renderer) particular(ctx context.Context, w Wizard, step model.Step) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, step); err != nil {
		return err
	}
	method := model.MethodLand
	if step == model.StepShip {
		method = model.MethodShip
	}
	choices := model.ParticularOptions(method)
	idx, err := r.chooseOption(ctx, loc, choices, w.Data().ParticularMethod)
	if err != nil {
		return err
	}
	if idx == len(choices) {
		w.GoBack()
		return nil
	}
	w.Update(model.Patch{ParticularMethod: model.String(choices[idx])})

	if errs := r.validator.Step(step, w.Data(), r.state.Shipping); !errs.Empty() {
		return r.showErrors(ctx, loc, errs)
	}
	return w.Advance(model.StepNotes)
}

// chooseOption offers choices plus a trailing back entry; the returned index
// equals len(choices) when back was picked.
func (r *Renderer) chooseOption(ctx context.Context, loc i18n.Localizer, choices []string, current string) (int, error) {
	options := make([]string, 0, len(choices)+1)
	def := 0
	for i, c := range choices {
		options = append(options, loc.T(optionKeys[c]))
		if c == current {
			def = i
		}
	}
	options = append(options, loc.T("actionBack"))
	return r.choose(ctx, SelectConfig{
		Message:      loc.T("transportMethod"),
		Options:      options,
		DefaultIndex: def,
	})
}

func (r *Renderer) plane(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepPlane); err != nil {
		return err
	}
	data := w.Data()
	def := ""
	if data.MaxHeight > 0 {
		def = strconv.Itoa(data.MaxHeight)
	}
	raw, err := r.input(ctx, loc.T("maxHeight"), def, "")
	if err != nil {
		return err
	}
	w.Update(validation.ApplyHeight(data, raw))
	data = w.Data()

	choices := make([]string, 0, 3)
	for _, opt := range model.ParticularOptions(model.MethodPlane) {
		if opt == model.PlanePAX && !validation.PAXAvailable(data.MaxHeight) {
			continue
		}
		choices = append(choices, opt)
	}
	if !validation.PAXAvailable(data.MaxHeight) {
		if err := r.driver.Info(ctx, loc.T("paxUnavailable")); err != nil {
			return err
		}
	}

	idx, err := r.chooseOption(ctx, loc, choices, data.ParticularMethod)
	if err != nil {
		return err
	}
	if idx == len(choices) {
		w.GoBack()
		return nil
	}
	w.Update(validation.SelectPlaneOption(data, choices[idx]))

	if errs := r.validator.Step(model.StepPlane, w.Data(), r.state.Shipping); !errs.Empty() {
		return r.showErrors(ctx, loc, errs)
	}
	return w.Advance(model.StepNotes)
}

func (r *Renderer) logistics(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepLogistics); err != nil {
		return err
	}
	if err := r.driver.Info(ctx, loc.T("logistics")); err != nil {
		return err
	}
	act, err := r.action(ctx, loc, "actionNext")
	if err != nil {
		return err
	}
	if act == actionBack {
		w.GoBack()
		return nil
	}
	return w.Advance(model.StepNotes)
}

func (r *Renderer) notes(ctx context.Context, w Wizard) error {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepNotes); err != nil {
		return err
	}
	data := w.Data()
	raw, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: r.theme.PromptPrefix + loc.T("notesPrompt"),
		Default: data.Notes,
		Help:    loc.T("notesPlaceholder"),
	})
	if err != nil {
		return err
	}
	notes := validation.Sanitize(validation.ClampNotes(raw))
	if validation.NotesLength(raw) > model.MaxNotesLength {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+loc.T("maxCharacters")); err != nil {
			return err
		}
	}
	w.Update(model.Patch{Notes: model.String(notes)})

	summary, err := r.templates.renderSummary(r.summaryView(loc, w.Data()))
	if err != nil {
		return err
	}
	if err := r.driver.Info(ctx, summary); err != nil {
		return err
	}

	act, err := r.action(ctx, loc, "submit")
	if err != nil {
		return err
	}
	if act == actionBack {
		w.GoBack()
		return nil
	}

	if err := r.driver.Info(ctx, loc.T("submitting")); err != nil {
		return err
	}
	result, err := r.submitter.SubmitRecord(ctx, w, notes)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	msg := submit.Localize(err, r.translator, loc.Language)
	if err != nil {
		r.logger.Printf("tui: submission failed: %v", err)
		return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
	}

	r.state.LastResult = result
	if err := r.driver.Info(ctx, msg+" "+loc.T("requestProcessing")); err != nil {
		return err
	}
	if err := r.sleep(ctx, r.successDelay); err != nil {
		return err
	}
	w.Complete()
	return nil
}

func (r *Renderer) summaryView(loc i18n.Localizer, data model.FormData) SummaryView {
	schedule := validation.ScheduleOf(data)
	particular := data.ParticularMethod
	if key, ok := optionKeys[particular]; ok {
		particular = loc.T(key)
	}
	view := SummaryView{
		Heading: loc.T("summary"),
		Labels: map[string]string{
			"method":   loc.T("transportMethod"),
			"route":    loc.T("route"),
			"fromDate": loc.T("fromDate"),
			"toDate":   loc.T("toDate"),
			"notes":    loc.T("additionalNotes"),
		},
		Method:      loc.T(methodKeys[data.Method]),
		Particular:  particular,
		From:        r.countryName(data.FromCountry, loc.Language),
		To:          r.countryName(data.ToCountry, loc.Language),
		FromDate:    schedule.From,
		ToDate:      schedule.To,
		NotesLength: validation.NotesLength(data.Notes),
		NotesMax:    model.MaxNotesLength,
	}
	if data.Method == model.MethodPlane {
		view.Height = data.MaxHeight
	}
	return view
}

func (r *Renderer) countryName(code string, lang model.Language) string {
	for _, c := range r.countries {
		if c.Code == code {
			return c.DisplayName(lang)
		}
	}
	return code
}

func (r *Renderer) success(ctx context.Context, w Wizard) (bool, error) {
	loc := r.localizer(w)
	if err := r.heading(ctx, loc, model.StepSuccess); err != nil {
		return false, err
	}
	text, err := r.templates.renderSuccess(SuccessView{
		Title:        loc.T("successTitle"),
		Body:         loc.T("successBody"),
		RequestLabel: loc.T("requestId"),
		RequestID:    r.state.LastResult.RequestID,
		Unavailable:  loc.T("unavailable"),
	})
	if err != nil {
		return false, err
	}
	if err := r.driver.Info(ctx, text); err != nil {
		return false, err
	}

	idx, err := r.choose(ctx, SelectConfig{
		Message: loc.T("chooseAction"),
		Options: []string{loc.T("submitAnother"), loc.T("exit")},
	})
	if err != nil {
		return false, err
	}
	if idx == 0 {
		r.state.Reset()
		w.Reset()
		return false, nil
	}
	return true, nil
}
