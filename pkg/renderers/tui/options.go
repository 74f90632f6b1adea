package tui

import (
	"log"
	"time"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Theme captures optional formatting hints applied to printed messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme marks errors so they stand out from step headings.
var DefaultTheme = Theme{ErrorPrefix: "! "}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTranslator overrides the string table.
func WithTranslator(t i18n.Translator) Option {
	return func(r *Renderer) {
		if t != nil {
			r.translator = t
		}
	}
}

// WithValidator overrides the step validator, typically to pin its clock.
func WithValidator(v *validation.Validator) Option {
	return func(r *Renderer) {
		if v != nil {
			r.validator = v
		}
	}
}

// WithSubmitter sets the collaborator that posts the finished record.
func WithSubmitter(s Submitter) Option {
	return func(r *Renderer) {
		if s != nil {
			r.submitter = s
		}
	}
}

// WithIPResolver sets the collaborator queried during the splash step.
func WithIPResolver(resolver IPResolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithSuccessDelay sets how long the success notice stays before the
// success page. Zero moves on immediately.
func WithSuccessDelay(d time.Duration) Option {
	return func(r *Renderer) {
		if d >= 0 {
			r.successDelay = d
		}
	}
}

// WithSplashDuration sets the length of the splash animation. Zero skips the
// animation and waits for the address lookup alone.
func WithSplashDuration(d time.Duration) Option {
	return func(r *Renderer) {
		if d >= 0 {
			r.splashDuration = d
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger routes step and submission logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
