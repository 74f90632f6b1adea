package i18n_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/model"
)

func TestDefaultCatalog_LanguagesShareKeys(t *testing.T) {
	c, err := i18n.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	en := c.Keys(model.LanguageEN)
	sort.Strings(en)
	for _, lang := range []model.Language{model.LanguageIT, model.LanguageCN} {
		keys := c.Keys(lang)
		sort.Strings(keys)
		if diff := cmp.Diff(en, keys); diff != "" {
			t.Errorf("%s keys differ from EN (-en +%s):\n%s", lang, lang, diff)
		}
	}
}

func TestCatalog_TranslateValidationKeys(t *testing.T) {
	c := i18n.MustDefault()
	cases := []struct {
		lang model.Language
		key  string
		want string
	}{
		{model.LanguageEN, "invalidEmail", "Invalid email format"},
		{model.LanguageIT, "required", "Campo obbligatorio"},
		{model.LanguageCN, "apiTimeout", "请求超时。请检查网络连接后重试。"},
		{model.LanguageEN, "apiTimeout", "Request timeout. Please check your connection and try again."},
	}
	for _, tc := range cases {
		got, err := c.Translate(string(tc.lang), tc.key)
		if err != nil {
			t.Fatalf("%s/%s: %v", tc.lang, tc.key, err)
		}
		if got != tc.want {
			t.Errorf("%s/%s = %q, want %q", tc.lang, tc.key, got, tc.want)
		}
	}
}

func TestCatalog_FallsBackToEnglish(t *testing.T) {
	c, err := i18n.Parse([]byte("languages:\n  EN:\n    hello: Hello %s\n  IT:\n    bye: Ciao\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, err := c.Translate("it", "hello", "Ada")
	if err != nil || got != "Hello Ada" {
		t.Fatalf("expected english fallback, got %q (%v)", got, err)
	}
	if _, err := c.Translate("IT", "missing"); !errors.Is(err, i18n.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestParse_RejectsUnknownLanguage(t *testing.T) {
	if _, err := i18n.Parse([]byte("languages:\n  FR:\n    a: b\n")); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
	if _, err := i18n.Parse([]byte("languages: {}\n")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestTranslate_MissingHandlers(t *testing.T) {
	if got := i18n.Translate("EN", "k", "fallback", nil, nil); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := i18n.Translate("EN", "k", "", nil, nil); got != "k" {
		t.Fatalf("expected key, got %q", got)
	}
	var gotErr error
	handler := func(locale, key string, _ []any, err error) string {
		gotErr = err
		return "[" + locale + ":" + key + "]"
	}
	if got := i18n.Translate("IT", "k", "", nil, handler); got != "[IT:k]" {
		t.Fatalf("expected handler output, got %q", got)
	}
	if !errors.Is(gotErr, i18n.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}

	loc := i18n.Localizer{Translator: i18n.MustDefault(), Language: model.LanguageIT}
	if got := loc.T("next"); got != "Avanti" {
		t.Fatalf("localizer = %q", got)
	}
	if got := loc.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestMatchLanguage(t *testing.T) {
	cases := map[string]model.Language{
		"":            model.LanguageEN,
		"C":           model.LanguageEN,
		"it_IT.UTF-8": model.LanguageIT,
		"en-GB":       model.LanguageEN,
		"zh-Hans":     model.LanguageCN,
		"zh_CN.UTF-8": model.LanguageCN,
		"CN":          model.LanguageCN,
		"IT":          model.LanguageIT,
		"de-DE":       model.LanguageEN,
	}
	for in, want := range cases {
		if got := i18n.MatchLanguage(in); got != want {
			t.Errorf("MatchLanguage(%q) = %s, want %s", in, got, want)
		}
	}
}
