package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

const (
	// DefaultBaseURL is the quote backend host.
	DefaultBaseURL = "https://dtrut.pythonanywhere.com"
	// DefaultPath is the quote submission route.
	DefaultPath = "/api/freight-request"
	// DefaultTimeout bounds a single submission.
	DefaultTimeout = 30 * time.Second
	// SendTimeLayout is the ISO 8601 layout used for USER_sendtime.
	SendTimeLayout = "2006-01-02T15:04:05.000Z07:00"

	statusSuccess = "success"
	// unknownFailure is the message used when the backend rejects a request
	// without explaining why.
	unknownFailure = "Unknown error occurred"
)

// Record is the slice of the wizard controller a submission needs.
type Record interface {
	Data() model.FormData
	Update(model.Patch)
}

// PayloadChecker validates an encoded payload before it leaves the process.
type PayloadChecker interface {
	Check(ctx context.Context, body []byte) error
}

// Result describes an accepted submission.
type Result struct {
	RequestID string
	Payload   Payload
}

// Client posts quote requests to the backend. It allows one submission in
// flight at a time.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	logger     *log.Logger
	checker    PayloadChecker
	now        func() time.Time
	inFlight   atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithEndpoint sets the base URL and path of the quote route.
func WithEndpoint(baseURL, path string) Option {
	return func(c *Client) {
		c.endpoint = joinEndpoint(baseURL, path)
	}
}

// WithTimeout overrides the per-submission bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger routes submission logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPayloadChecker validates payloads against the endpoint contract before
// sending.
func WithPayloadChecker(checker PayloadChecker) Option {
	return func(c *Client) {
		c.checker = checker
	}
}

// WithClock overrides the time source used to stamp USER_sendtime.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New constructs a Client targeting the default endpoint.
func New(options ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		endpoint:   joinEndpoint(DefaultBaseURL, DefaultPath),
		timeout:    DefaultTimeout,
		logger:     log.New(io.Discard, "", 0),
		now:        time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Endpoint reports the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// InFlight reports whether a submission is pending.
func (c *Client) InFlight() bool {
	return c.inFlight.Load()
}

// SubmitRecord stamps the send time, stores the sanitized notes, and posts
// the resulting record. The record is updated before the request so a retry
// after failure re-sends an equivalent payload with a new send time.
func (c *Client) SubmitRecord(ctx context.Context, record Record, notes string) (Result, error) {
	if record == nil {
		return Result{}, errors.New("submit: record is required")
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	record.Update(model.Patch{
		Notes:    model.String(validation.ClampNotes(validation.Sanitize(notes))),
		SendTime: model.String(c.now().UTC().Format(SendTimeLayout)),
	})
	return c.send(ctx, Transform(record.Data()))
}

// Submit posts payload once. Only one call runs at a time.
func (c *Client) Submit(ctx context.Context, payload Payload) (Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)
	return c.send(ctx, payload)
}

func (c *Client) send(ctx context.Context, payload Payload) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("submit: context is required")
	}
	if strings.TrimSpace(c.endpoint) == "" {
		return Result{}, ErrEndpointRequired
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("encode payload: %w", err)}
	}
	if c.checker != nil {
		if err := c.checker.Check(ctx, body); err != nil {
			c.logger.Printf("submit: payload rejected by contract: %v", err)
			return Result{}, &TransportError{Err: err}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Printf("submit: posting quote request for %s (%s)", payload.UserEmail, payload.TransportMethod)
	started := c.now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, c.classify(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, c.classify(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Printf("submit: http status %d", resp.StatusCode)
		return Result{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Result{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if status, _ := decoded["status"].(string); status == statusSuccess {
		result := Result{RequestID: requestID(decoded), Payload: payload}
		c.logger.Printf("submit: accepted request %q in %s", result.RequestID, c.now().Sub(started))
		return result, nil
	}

	message, _ := decoded["message"].(string)
	if strings.TrimSpace(message) == "" {
		message = unknownFailure
	}
	c.logger.Printf("submit: backend rejected request: %s", message)
	return Result{}, &BusinessError{Message: message}
}

func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		c.logger.Printf("submit: timed out after %s", c.timeout)
		return fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		c.logger.Printf("submit: timed out after %s", c.timeout)
		return fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
	}
	c.logger.Printf("submit: transport failure: %v", err)
	return &TransportError{Err: err}
}

func requestID(decoded map[string]any) string {
	for _, key := range []string{"requestId", "id"} {
		switch v := decoded[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

func joinEndpoint(baseURL, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
