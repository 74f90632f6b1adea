package i18n

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quoteform/pkg/model"
)

//go:embed messages.yaml
var embeddedMessages []byte

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingHandler decides what to show when a key cannot be resolved.
type MissingHandler func(locale, key string, args []any, err error) string

// Catalog is a read-only string table keyed by language. Lookups fall back
// to English before failing.
type Catalog struct {
	messages map[model.Language]map[string]string
	fallback model.Language
}

var _ Translator = (*Catalog)(nil)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the bundled catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedMessages)
	})
	return defaultCatalog, defaultErr
}

// MustDefault panics when the bundled catalog cannot be parsed.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML document of the form `languages: {EN: {key: text}}`.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Languages map[string]map[string]string `yaml:"languages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("i18n: parse catalog: %w", err)
	}
	if len(doc.Languages) == 0 {
		return nil, fmt.Errorf("i18n: catalog defines no languages")
	}

	c := &Catalog{
		messages: make(map[model.Language]map[string]string, len(doc.Languages)),
		fallback: model.LanguageEN,
	}
	for code, table := range doc.Languages {
		lang := model.Language(strings.ToUpper(strings.TrimSpace(code)))
		if !lang.Valid() {
			return nil, fmt.Errorf("i18n: unsupported language %q", code)
		}
		c.messages[lang] = table
	}
	return c, nil
}

// Translate implements Translator. Args are applied with fmt.Sprintf when
// present.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)
	lang := model.Language(strings.ToUpper(strings.TrimSpace(locale)))
	msg, ok := c.lookup(lang, key)
	if !ok {
		msg, ok = c.lookup(c.fallback, key)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, lang, key)
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg, nil
}

func (c *Catalog) lookup(lang model.Language, key string) (string, bool) {
	table, ok := c.messages[lang]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	if !ok || strings.TrimSpace(msg) == "" {
		return "", false
	}
	return msg, true
}

// Keys returns the keys defined for lang.
func (c *Catalog) Keys(lang model.Language) []string {
	if c == nil {
		return nil
	}
	table := c.messages[lang]
	out := make([]string, 0, len(table))
	for key := range table {
		out = append(out, key)
	}
	return out
}

// Localizer binds a translator to one language for step views.
type Localizer struct {
	Translator Translator
	Language   model.Language
	OnMissing  MissingHandler
}

// T resolves key, routing failures through OnMissing (defaulting to the key
// itself).
func (l Localizer) T(key string, args ...any) string {
	return Translate(string(l.Language), key, "", l.Translator, l.OnMissing, args...)
}

// Translate resolves key with t, using fallback or onMissing when the lookup
// fails.
func Translate(locale, key, fallback string, t Translator, onMissing MissingHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, args, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, args, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
