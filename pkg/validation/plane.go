package validation

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// PAXAvailable reports whether passenger aircraft space can carry a load of
// the given height in centimeters.
func PAXAvailable(height int) bool {
	return height < model.PAXMaxHeight
}

// ParseHeight keeps only the digits of raw and parses them. Anything that
// does not yield a number is reported as 0.
func ParseHeight(raw string) int {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0
	}
	height, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return height
}

// ApplyHeight is the height input handler: it stores the parsed height and
// clears a PAX selection once the height makes PAX unavailable.
func ApplyHeight(data model.FormData, raw string) model.Patch {
	height := ParseHeight(raw)
	patch := model.Patch{MaxHeight: model.Int(height)}
	if data.ParticularMethod == model.PlanePAX && !PAXAvailable(height) {
		patch.ParticularMethod = model.String("")
	}
	return patch
}

// SelectPlaneOption is the option handler: unavailable options are ignored
// and produce an empty patch.
func SelectPlaneOption(data model.FormData, option string) model.Patch {
	if !contains(model.ParticularOptions(model.MethodPlane), option) {
		return model.Patch{}
	}
	if option == model.PlanePAX && !PAXAvailable(data.MaxHeight) {
		return model.Patch{}
	}
	return model.Patch{ParticularMethod: model.String(option)}
}

// Plane checks the air freight step. PAX above the height limit fails even
// when the record was mutated directly.
func Plane(data model.FormData) ErrorSet {
	errs := ErrorSet{}
	if data.MaxHeight <= 0 {
		errs.Add(FieldMaxHeight, KeyRequired)
	}
	switch {
	case !contains(model.ParticularOptions(model.MethodPlane), data.ParticularMethod):
		errs.Add(FieldParticularMethod, KeyRequired)
	case data.ParticularMethod == model.PlanePAX && !PAXAvailable(data.MaxHeight):
		errs.Add(FieldParticularMethod, KeyHeightTooHigh)
	}
	return errs
}
