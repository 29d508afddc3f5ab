package validator

import (
	"log/slog"
	"time"

	"github.com/aretw0/dischema/internal/logging"
	"github.com/aretw0/dischema/pkg/schema"
)

// DefaultMaxDepth bounds nested schema evaluation unless WithMaxDepth is given.
const DefaultMaxDepth = 100

// Observer receives the outcome of every check.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveCheck(valid bool, kinds []schema.Kind, elapsed time.Duration)
}

// Validator checks values against a schema.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	schema           *schema.Schema
	stopOnFirstError bool
	maxDepth         int
	logger           *slog.Logger
	observer         Observer
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithStopOnFirstError makes Check return as soon as one field fails.
func WithStopOnFirstError(stop bool) Option {
	return func(v *Validator) {
		v.stopOnFirstError = stop
	}
}

// WithMaxDepth sets the nesting limit for nested schemas and allowed items.
// Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		if depth > 0 {
			v.maxDepth = depth
		}
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithObserver reports every check to o (e.g. Prometheus metrics).
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		v.observer = o
	}
}

// New creates a Validator for s.
func New(s *schema.Schema, opts ...Option) *Validator {
	v := &Validator{
		schema:   s,
		maxDepth: DefaultMaxDepth,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Schema returns the schema the validator checks against.
func (v *Validator) Schema() *schema.Schema {
	return v.schema
}

// Check validates value against the schema.
// The value is deep-copied first and never mutated; defaults and coercions
// are applied to the copy returned in Result.Data.
func (v *Validator) Check(value any) *Result {
	start := time.Now()

	s := &session{
		maxDepth: v.maxDepth,
		failFast: v.stopOnFirstError,
		logger:   v.logger,
	}
	result := s.run(v.schema, value)

	elapsed := time.Since(start)
	v.logger.Debug("schema check finished",
		"fields", v.schema.Len(),
		"valid", result.Valid,
		"errors", len(result.Errors),
		"elapsed", elapsed,
	)
	if v.observer != nil {
		v.observer.ObserveCheck(result.Valid, result.Kinds(), elapsed)
	}
	return result
}

// Check is a one-shot shorthand for New(s, opts...).Check(value).
func Check(s *schema.Schema, value any, opts ...Option) *Result {
	return New(s, opts...).Check(value)
}
