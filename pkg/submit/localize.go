package submit

import (
	"errors"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/model"
)

// Message keys used for submission feedback.
const (
	KeySuccess = "quotationSentSuccessfully"
	KeyTimeout = "apiTimeout"
	KeyError   = "apiError"
)

// Localize turns a submission outcome into the text shown to the user:
// timeouts and generic failures use the string table, backend rejections
// are shown verbatim.
func Localize(err error, t i18n.Translator, lang model.Language) string {
	loc := i18n.Localizer{Translator: t, Language: lang}
	if err == nil {
		return loc.T(KeySuccess)
	}
	var business *BusinessError
	switch {
	case errors.As(err, &business):
		return business.Message
	case errors.Is(err, ErrTimeout):
		return loc.T(KeyTimeout)
	default:
		return loc.T(KeyError)
	}
}
