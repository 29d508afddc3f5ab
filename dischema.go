package dischema

import (
	"fmt"

	"github.com/aretw0/dischema/pkg/schema"
	"github.com/aretw0/dischema/pkg/validator"
)

type (
	// Validator checks values against a decoded schema.
	Validator = validator.Validator
	// Result is the outcome of one check.
	Result = validator.Result
	// Option configures a Validator.
	Option = validator.Option
)

var (
	WithStopOnFirstError = validator.WithStopOnFirstError
	WithMaxDepth         = validator.WithMaxDepth
	WithLogger           = validator.WithLogger
	WithObserver         = validator.WithObserver
)

// New decodes a schema literal and returns a Validator for it.
// A malformed literal is reported as a *schema.ValidationError of kind
// MalformedSchema or UnsupportedType.
func New(raw map[string]any, opts ...Option) (*Validator, error) {
	s, err := schema.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return validator.New(s, opts...), nil
}

// Check decodes raw and validates data against it in one call.
func Check(raw map[string]any, data any, opts ...Option) (*Result, error) {
	v, err := New(raw, opts...)
	if err != nil {
		return nil, err
	}
	return v.Check(data), nil
}
