// Package iplookup resolves the public IPv4 address of the machine running
// the wizard. Lookups are best effort and never fail.
package iplookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultURL is the ipify JSON endpoint.
	DefaultURL = "https://api.ipify.org?format=json"
	// Unknown is reported when the address cannot be resolved.
	Unknown = "unknown"
	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 5 * time.Second
)

// Resolver fetches the caller's public address.
type Resolver struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
	logger     *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithURL overrides the lookup endpoint.
func WithURL(url string) Option {
	return func(r *Resolver) {
		if strings.TrimSpace(url) != "" {
			r.url = url
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// WithTimeout overrides the lookup bound.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLogger routes lookup failures to logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New constructs a Resolver for the ipify endpoint.
func New(options ...Option) *Resolver {
	r := &Resolver{
		url:        DefaultURL,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Lookup returns the public address, or Unknown on any failure.
func (r *Resolver) Lookup(ctx context.Context) string {
	ip, err := r.fetch(ctx)
	if err != nil {
		r.logger.Printf("iplookup: %v", err)
		return Unknown
	}
	return ip
}

func (r *Resolver) fetch(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", fmt.Errorf("response has no ip")
	}
	return ip, nil
}
