package model

// Step names one screen of the wizard.
type Step string

const (
	StepSplash    Step = "splash"
	StepLanguage  Step = "language"
	StepUserInfo  Step = "user-info"
	StepShipping  Step = "shipping"
	StepTransport Step = "transport"
	StepLand      Step = "land"
	StepShip      Step = "ship"
	StepPlane     Step = "plane"
	StepLogistics Step = "logistics"
	StepNotes     Step = "notes"
	// StepSuccess is terminal and only reached after a confirmed submission.
	StepSuccess Step = "success"
)

// Steps lists every step, terminal state included.
var Steps = []Step{
	StepSplash, StepLanguage, StepUserInfo, StepShipping, StepTransport,
	StepLand, StepShip, StepPlane, StepLogistics, StepNotes, StepSuccess,
}

// TotalSteps is the number of positions shown by the step indicator.
const TotalSteps = 8

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	for _, step := range Steps {
		if step == s {
			return true
		}
	}
	return false
}

// Title returns the heading shown while the step is current.
func (s Step) Title() string {
	const brand = "THL International"
	switch s {
	case StepSplash:
		return brand + " - Loading"
	case StepLanguage:
		return brand + " - Select Language"
	case StepUserInfo:
		return brand + " - Personal Information"
	case StepShipping:
		return brand + " - Shipping Details"
	case StepTransport:
		return brand + " - Transport Method"
	case StepLand:
		return brand + " - Land Transport"
	case StepShip:
		return brand + " - Ship Transport"
	case StepPlane:
		return brand + " - Air Transport"
	case StepLogistics:
		return brand + " - Logistics"
	case StepNotes:
		return brand + " - Final Details"
	default:
		return brand + " - Freight Forwarding"
	}
}

// Position returns the step indicator position (1-based) or 0 when the step
// is not part of the numbered sequence.
func (s Step) Position() int {
	switch s {
	case StepUserInfo:
		return 2
	case StepShipping:
		return 3
	case StepTransport:
		return 4
	case StepLand, StepShip, StepPlane, StepLogistics:
		return 5
	case StepNotes:
		return 8
	default:
		return 0
	}
}
