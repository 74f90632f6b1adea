package model

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var countriesYAML []byte

// Country is a selectable origin or destination.
type Country struct {
	Code string              `yaml:"code"`
	Name map[Language]string `yaml:"name"`
}

// DisplayName returns the localized name, falling back to English and then to
// the code.
func (c Country) DisplayName(lang Language) string {
	if name := strings.TrimSpace(c.Name[lang]); name != "" {
		return name
	}
	if name := strings.TrimSpace(c.Name[LanguageEN]); name != "" {
		return name
	}
	return c.Code
}

var (
	countriesOnce sync.Once
	countries     []Country
	countriesErr  error
)

// Countries returns the bundled country list sorted by code with OTHER last.
func Countries() ([]Country, error) {
	countriesOnce.Do(func() {
		countries, countriesErr = ParseCountries(countriesYAML)
	})
	if countriesErr != nil {
		return nil, countriesErr
	}
	return append([]Country(nil), countries...), nil
}

// ParseCountries decodes a YAML country list.
func ParseCountries(data []byte) ([]Country, error) {
	var doc struct {
		Countries []Country `yaml:"countries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("model: parse countries: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Countries))
	out := make([]Country, 0, len(doc.Countries))
	for _, c := range doc.Countries {
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		if c.Code == "" {
			return nil, fmt.Errorf("model: country without code")
		}
		if _, dup := seen[c.Code]; dup {
			return nil, fmt.Errorf("model: duplicate country %q", c.Code)
		}
		seen[c.Code] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Code == OtherCountryCode || out[j].Code == OtherCountryCode {
			return out[j].Code == OtherCountryCode && out[i].Code != OtherCountryCode
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}
