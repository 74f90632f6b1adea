package wizard

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Controller owns the wizard state: the accumulated record and the current
// step. All record mutation goes through Update so asynchronous results (IP
// lookup, submission stamps) share the path used by synchronous edits.
type Controller struct {
	mu       sync.RWMutex
	data     model.FormData
	step     model.Step
	logger   *log.Logger
	onChange []func(from, to model.Step)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes transition logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStepListener registers fn to run after every step change.
func WithStepListener(fn func(from, to model.Step)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onChange = append(c.onChange, fn)
		}
	}
}

// New returns a controller positioned on the splash step with default data.
func New(options ...Option) *Controller {
	c := &Controller{
		data:   model.DefaultFormData(),
		step:   model.StepSplash,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Data returns a copy of the current record.
func (c *Controller) Data() model.FormData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Step returns the current step.
func (c *Controller) Step() model.Step {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.step
}

// Update merges patch into the record. It never validates and never moves
// the wizard.
func (c *Controller) Update(patch model.Patch) {
	if patch.Empty() {
		return
	}
	c.mu.Lock()
	c.data = patch.Apply(c.data)
	c.mu.Unlock()
}

// Advance moves to target unconditionally. Callers validate first.
func (c *Controller) Advance(target model.Step) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStep, target)
	}
	c.setStep(target)
	return nil
}

// GoBack moves to the predecessor of the current step and returns it.
func (c *Controller) GoBack() model.Step {
	c.mu.RLock()
	prev := PreviousStep(c.step, c.data.Method)
	c.mu.RUnlock()
	c.setStep(prev)
	return prev
}

// Reset restores the default record and returns to splash.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.data = model.DefaultFormData()
	c.mu.Unlock()
	c.setStep(model.StepSplash)
}

// CompleteSplash stores the looked up address and opens language selection.
func (c *Controller) CompleteSplash(ip string) {
	c.Update(model.Patch{IPv4: model.String(ip)})
	c.setStep(model.StepLanguage)
}

// SelectLanguage stores lang and opens the user info step.
func (c *Controller) SelectLanguage(lang model.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	c.Update(model.Patch{Language: model.LanguagePtr(lang)})
	c.setStep(model.StepUserInfo)
	return nil
}

// SelectMethod stores method and moves to its detail step. LOGISTICS forces
// the particular method to "Other" and skips straight to notes.
func (c *Controller) SelectMethod(method model.Method) (model.Step, error) {
	if !method.Valid() {
		return c.Step(), fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	patch := model.Patch{Method: model.MethodPtr(method)}
	if method == model.MethodLogistics {
		patch.ParticularMethod = model.String(model.OptionOther)
	}
	c.Update(patch)
	next := NextStepForMethod(method)
	c.setStep(next)
	return next, nil
}

// Complete moves to the terminal success state after a confirmed submission.
func (c *Controller) Complete() {
	c.setStep(model.StepSuccess)
}

func (c *Controller) setStep(next model.Step) {
	c.mu.Lock()
	prev := c.step
	c.step = next
	listeners := append([]func(from, to model.Step){}, c.onChange...)
	c.mu.Unlock()

	if prev != next {
		c.logger.Printf("wizard: step %s -> %s", prev, next)
	}
	for _, fn := range listeners {
		fn(prev, next)
	}
}
