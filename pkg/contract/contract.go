package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// DefaultOperationID names the submission operation in the embedded document.
const DefaultOperationID = "submitFreightRequest"

//go:embed openapi.yaml
var embeddedDocument []byte

// Document returns a copy of the embedded endpoint description.
func Document() []byte {
	return append([]byte(nil), embeddedDocument...)
}

// Checker validates JSON bodies against an operation's request schema.
type Checker struct {
	operationID string
	validate    bool
	logger      *log.Logger
	schema      *openapi3.Schema
}

// Option configures a Checker.
type Option func(*Checker)

// WithOperationID selects the operation whose request body is enforced.
func WithOperationID(id string) Option {
	return func(c *Checker) {
		if strings.TrimSpace(id) != "" {
			c.operationID = id
		}
	}
}

// WithDocumentValidation validates the whole document when loading it.
func WithDocumentValidation(enabled bool) Option {
	return func(c *Checker) {
		c.validate = enabled
	}
}

// WithLogger routes contract violations to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a Checker from the embedded document.
func New(ctx context.Context, options ...Option) (*Checker, error) {
	return Load(ctx, embeddedDocument, options...)
}

// Load builds a Checker from an OpenAPI document in JSON or YAML.
func Load(ctx context.Context, data []byte, options ...Option) (*Checker, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Checker{
		operationID: DefaultOperationID,
		validate:    true,
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if c.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("contract: validate: %w", err)
		}
	}

	operation := findOperation(spec, c.operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, c.operationID)
	}
	schema := requestSchema(operation)
	if schema == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestSchemaMissing, c.operationID)
	}
	c.schema = schema
	return c, nil
}

// Check decodes body and validates it against the request schema. Every
// violation is reported, not only the first.
func (c *Checker) Check(ctx context.Context, body []byte) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidPayload, err)
	}
	if err := c.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		c.logger.Printf("contract: %s rejected payload: %v", c.operationID, err)
		return fmt.Errorf("%w: %s", ErrInvalidPayload, describe(err))
	}
	return nil
}

// Required lists the fields the request schema marks as mandatory.
func (c *Checker) Required() []string {
	return append([]string(nil), c.schema.Required...)
}

func findOperation(spec *openapi3.T, id string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == id {
				return op
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	body := operation.RequestBody
	if body == nil || body.Value == nil {
		return nil
	}
	mt, ok := body.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func describe(err error) string {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) {
		return schemaMessage(err)
	}
	parts := make([]string, 0, len(multi))
	for _, item := range multi {
		parts = append(parts, schemaMessage(item))
	}
	return strings.Join(parts, "; ")
}

func schemaMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" {
			return schemaErr.Reason
		}
		return field + ": " + schemaErr.Reason
	}
	return err.Error()
}
