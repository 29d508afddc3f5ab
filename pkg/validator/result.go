package validator

import "github.com/aretw0/dischema/pkg/schema"

// Result is the outcome of one Check call.
type Result struct {
	// Data is the checked copy of the input, with defaults and coercions applied.
	Data any `json:"data" yaml:"data"`

	// Errors lists failures in the order they were found.
	Errors []*schema.ValidationError `json:"errors" yaml:"errors"`

	// Valid is true iff Errors is empty.
	Valid bool `json:"valid" yaml:"valid"`
}

func newResult(data any, errs []*schema.ValidationError) *Result {
	if errs == nil {
		errs = make([]*schema.ValidationError, 0)
	}
	return &Result{Data: data, Errors: errs, Valid: len(errs) == 0}
}

// Err returns nil for a valid result and a *schema.AggregateError otherwise.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return &schema.AggregateError{Errors: errs}
}

// Kinds returns the kind of every error, in order.
func (r *Result) Kinds() []schema.Kind {
	kinds := make([]schema.Kind, len(r.Errors))
	for i, e := range r.Errors {
		kinds[i] = e.Kind
	}
	return kinds
}

// ErrorsAt returns the errors reported at path.
func (r *Result) ErrorsAt(path string) []*schema.ValidationError {
	var out []*schema.ValidationError
	for _, e := range r.Errors {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}
