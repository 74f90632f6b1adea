// Package config loads runtime settings for the quote wizard from the
// environment, with command line flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/goliatone/go-quoteform/pkg/i18n"
	"github.com/goliatone/go-quoteform/pkg/model"
)

// Config holds every tunable of a wizard session.
type Config struct {
	APIBaseURL     string        `env:"QUOTEFORM_API_BASE_URL" envDefault:"https://dtrut.pythonanywhere.com"`
	APIPath        string        `env:"QUOTEFORM_API_PATH" envDefault:"/api/freight-request"`
	Timeout        time.Duration `env:"QUOTEFORM_TIMEOUT" envDefault:"30s"`
	IPLookupURL    string        `env:"QUOTEFORM_IP_LOOKUP_URL" envDefault:"https://api.ipify.org?format=json"`
	SuccessDelay   time.Duration `env:"QUOTEFORM_SUCCESS_DELAY" envDefault:"2s"`
	SplashDuration time.Duration `env:"QUOTEFORM_SPLASH_DURATION" envDefault:"10s"`
	Language       string        `env:"QUOTEFORM_LANG"`
	ContractSource string        `env:"QUOTEFORM_CONTRACT"`
	SkipContract   bool          `env:"QUOTEFORM_SKIP_CONTRACT"`
	Verbose        bool          `env:"QUOTEFORM_VERBOSE"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if strings.TrimSpace(cfg.Language) == "" {
		locale := os.Getenv("LANG")
		if opts.Environment != nil {
			locale = opts.Environment["LANG"]
		}
		cfg.Language = string(i18n.MatchLanguage(locale))
	}
	return cfg, nil
}

// RegisterFlags binds flags to cfg using its current values as defaults, so
// flags parsed afterwards override the environment.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Base URL of the quote backend")
	fs.StringVar(&cfg.APIPath, "api-path", cfg.APIPath, "Path of the quote submission route")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Submission timeout")
	fs.StringVar(&cfg.IPLookupURL, "ip-lookup", cfg.IPLookupURL, "Public IP lookup endpoint")
	fs.DurationVar(&cfg.SuccessDelay, "success-delay", cfg.SuccessDelay, "How long the success notice stays before the success page")
	fs.DurationVar(&cfg.SplashDuration, "splash", cfg.SplashDuration, "Splash animation length (0 skips the splash)")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Initial language (EN, IT, CN or a locale such as it_IT.UTF-8)")
	fs.StringVar(&cfg.ContractSource, "contract", cfg.ContractSource, "OpenAPI document (file or URL) replacing the bundled endpoint contract")
	fs.BoolVar(&cfg.SkipContract, "skip-contract", cfg.SkipContract, "Do not check payloads against the endpoint contract")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log to stderr")
}

// InitialLanguage resolves the configured language, accepting either a code
// or a locale string.
func (cfg Config) InitialLanguage() model.Language {
	candidate := model.Language(strings.ToUpper(strings.TrimSpace(cfg.Language)))
	if candidate.Valid() {
		return candidate
	}
	return i18n.MatchLanguage(cfg.Language)
}

// Validate reports settings that would make the session unusable.
func (cfg Config) Validate() error {
	var errs []error
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.APIBaseURL))
	}
	if cfg.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeout %s", ErrInvalidDuration, cfg.Timeout))
	}
	if cfg.SuccessDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: success delay %s", ErrInvalidDuration, cfg.SuccessDelay))
	}
	if cfg.SplashDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: splash %s", ErrInvalidDuration, cfg.SplashDuration))
	}
	return errors.Join(errs...)
}
