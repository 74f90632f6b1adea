package wizard

import "github.com/goliatone/go-quoteform/pkg/model"

// PreviousStep returns the step reached by going back from step. The notes
// step has four possible predecessors, so the accumulated transport method
// selects among them. Every step has a defined result: splash and the
// terminal success state map to themselves.
func PreviousStep(step model.Step, method model.Method) model.Step {
	switch step {
	case model.StepLanguage:
		return model.StepSplash
	case model.StepUserInfo:
		return model.StepLanguage
	case model.StepShipping:
		return model.StepUserInfo
	case model.StepTransport:
		return model.StepShipping
	case model.StepLand, model.StepShip, model.StepPlane, model.StepLogistics:
		return model.StepTransport
	case model.StepNotes:
		return notesPredecessor(method)
	case model.StepSuccess:
		return model.StepSuccess
	default:
		return model.StepSplash
	}
}

func notesPredecessor(method model.Method) model.Step {
	switch method {
	case model.MethodLogistics:
		return model.StepTransport
	case model.MethodLand:
		return model.StepLand
	case model.MethodShip:
		return model.StepShip
	default:
		return model.StepPlane
	}
}

// NextStepForMethod maps a transport method onto the step that collects its
// details. LOGISTICS has no detail step and goes straight to notes.
func NextStepForMethod(method model.Method) model.Step {
	switch method {
	case model.MethodLand:
		return model.StepLand
	case model.MethodShip:
		return model.StepShip
	case model.MethodPlane:
		return model.StepPlane
	default:
		return model.StepNotes
	}
}
