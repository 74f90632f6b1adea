package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-quoteform/pkg/model"
)

var (
	supportedTags = []language.Tag{language.English, language.Italian, language.Chinese}
	tagLanguages  = []model.Language{model.LanguageEN, model.LanguageIT, model.LanguageCN}
	matcher       = language.NewMatcher(supportedTags)
)

// MatchLanguage picks the closest supported language for a locale string
// such as "it_IT.UTF-8", "zh-Hans" or "en-GB". Unknown or empty input maps to
// English.
func MatchLanguage(locale string) model.Language {
	raw := strings.TrimSpace(locale)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || strings.EqualFold(raw, "C") || strings.EqualFold(raw, "POSIX") {
		return model.LanguageEN
	}
	if lang := model.Language(strings.ToUpper(raw)); lang.Valid() {
		return lang
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return model.LanguageEN
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return model.LanguageEN
	}
	return tagLanguages[index]
}
