package tui

import (
	"github.com/goliatone/go-quoteform/pkg/submit"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// State holds view input that lives outside the wizard record: the typed
// country overrides and the outcome of the last accepted submission.
type State struct {
	Shipping   validation.ShippingInput
	LastResult submit.Result
}

// Reset forgets everything collected for the previous request.
func (s *State) Reset() {
	if s == nil {
		return
	}
	*s = State{}
}
