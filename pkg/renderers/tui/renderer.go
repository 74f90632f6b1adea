package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/iplookup"
	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/submit"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Wizard is the controller surface the step views drive.
type Wizard interface {
	Data() model.FormData
	Step() model.Step
	Update(model.Patch)
	Advance(model.Step) error
	GoBack() model.Step
	Reset()
	CompleteSplash(ip string)
	SelectLanguage(model.Language) error
	SelectMethod(model.Method) (model.Step, error)
	Complete()
}

// Submitter posts the finished record.
type Submitter interface {
	SubmitRecord(ctx context.Context, record submit.Record, notes string) (submit.Result, error)
}

// IPResolver looks up the requester's public address. It never fails.
type IPResolver interface {
	Lookup(ctx context.Context) string
}

// Renderer runs a wizard session in the terminal, one view per step.
type Renderer struct {
	driver         PromptDriver
	translator     i18n.Translator
	validator      *validation.Validator
	submitter      Submitter
	resolver       IPResolver
	theme          Theme
	logger         *log.Logger
	successDelay   time.Duration
	splashDuration time.Duration

	countries []model.Country
	templates *templates
	state     State
}

// New constructs a TUI renderer with defaults (survey driver, bundled string
// table, live submission and address lookup).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:         driver,
		theme:          DefaultTheme,
		logger:         log.New(io.Discard, "", 0),
		successDelay:   2 * time.Second,
		splashDuration: 10 * time.Second,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.translator == nil {
		catalog, err := i18n.Default()
		if err != nil {
			return nil, err
		}
		r.translator = catalog
	}
	if r.validator == nil {
		r.validator = validation.New()
	}
	if r.submitter == nil {
		r.submitter = submit.New(submit.WithLogger(r.logger))
	}
	if r.resolver == nil {
		r.resolver = iplookup.New(iplookup.WithLogger(r.logger))
	}

	r.countries, err = model.Countries()
	if err != nil {
		return nil, err
	}
	r.templates, err = loadTemplates()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run drives w until the user leaves from the success page. Prompt errors,
// including ErrAborted, end the session.
func (r *Renderer) Run(ctx context.Context, w Wizard) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if w == nil {
		return errors.New("tui: wizard is nil")
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := w.Step()
		var err error
		switch step {
		case model.StepSplash:
			err = r.splash(ctx, w)
		case model.StepLanguage:
			err = r.language(ctx, w)
		case model.StepUserInfo:
			err = r.userInfo(ctx, w)
		case model.StepShipping:
			err = r.shipping(ctx, w)
		case model.StepTransport:
			err = r.transport(ctx, w)
		case model.StepLand, model.StepShip:
			err = r.particular(ctx, w, step)
		case model.StepPlane:
			err = r.plane(ctx, w)
		case model.StepLogistics:
			err = r.logistics(ctx, w)
		case model.StepNotes:
			err = r.notes(ctx, w)
		case model.StepSuccess:
			done, successErr := r.success(ctx, w)
			if successErr != nil {
				return successErr
			}
			if done {
				return nil
			}
		default:
			return fmt.Errorf("tui: no view for step %q", step)
		}
		if err != nil {
			return err
		}
	}
}

// State exposes the view input kept between prompts.
func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) localizer(w Wizard) i18n.Localizer {
	return i18n.Localizer{
		Translator: r.translator,
		Language:   w.Data().Language,
		OnMissing: func(locale, key string, _ []any, err error) string {
			r.logger.Printf("tui: missing %s/%s: %v", locale, key, err)
			return key
		},
	}
}

func (r *Renderer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
