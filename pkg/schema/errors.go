package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindNoField              Kind = "NoField"
	KindInvalidType          Kind = "InvalidType"
	KindUnsupportedType      Kind = "UnsupportedType"
	KindNoEqual              Kind = "NoEqual"
	KindExcludedValue        Kind = "ExcludedValue"
	KindNotAllowedValue      Kind = "NotAllowedValue"
	KindExcessLength         Kind = "ExcessLength"
	KindMissingLength        Kind = "MissingLength"
	KindExcessSize           Kind = "ExcessSize"
	KindMissingSize          Kind = "MissingSize"
	KindExcludedCharacters   Kind = "ExcludedCharacters"
	KindNotAllowedCharacter  Kind = "NotAllowedCharacter"
	KindInvalidItemSchema    Kind = "InvalidItemSchema"
	KindInvalidValueSchema   Kind = "InvalidValueSchema"
	KindNestedSchema         Kind = "NestedSchema"
	KindMaxNestingExceeded   Kind = "MaxNestingExceeded"
	KindMalformedSchema      Kind = "MalformedSchema"
	KindUnexpectedProcessing Kind = "UnexpectedProcessing"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Path     string `json:"path" yaml:"path"`         // e.g. users[0].address.city
	Reason   string `json:"reason" yaml:"reason"`     // human-readable reason
	Expected any    `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty" yaml:"actual,omitempty"`
	Limit    any    `json:"limit,omitempty" yaml:"limit,omitempty"`
	Cause    error  `json:"-" yaml:"-"`
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("field %q: %s", e.Path, e.Reason)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// At returns a copy of e reported at path.
func (e *ValidationError) At(path string) *ValidationError {
	c := *e
	c.Path = path
	return &c
}

// IsKind reports whether err is, or wraps, a ValidationError of kind k.
func IsKind(err error, k Kind) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *ValidationError:
		if e == nil {
			return false
		}
		return e.Kind == k || IsKind(e.Cause, k)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if IsKind(inner, k) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return IsKind(e.Unwrap(), k)
	}
	return false
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// --- Constructors ---

func NoField(path string) *ValidationError {
	return &ValidationError{Kind: KindNoField, Path: path, Reason: "required field is missing"}
}

// InvalidType reports a value whose runtime type is not expected.
// A nil value gets the dedicated null message.
func InvalidType(path string, expected Type, actual any) *ValidationError {
	reason := fmt.Sprintf("expected %s, got %s", expected, TypeName(actual))
	if actual == nil {
		reason = fmt.Sprintf("null is not allowed for %s", expected)
	}
	return &ValidationError{Kind: KindInvalidType, Path: path, Reason: reason, Expected: expected, Actual: actual}
}

func UnsupportedType(path string, t Type) *ValidationError {
	return &ValidationError{
		Kind:     KindUnsupportedType,
		Path:     path,
		Reason:   fmt.Sprintf("type %q is not supported", string(t)),
		Expected: t,
	}
}

func NoEqual(path string, actual, expected any) *ValidationError {
	return &ValidationError{
		Kind:     KindNoEqual,
		Path:     path,
		Reason:   fmt.Sprintf("value %v is not equal to %v", actual, expected),
		Expected: expected,
		Actual:   actual,
	}
}

func ExcludedValue(path string, value any) *ValidationError {
	return &ValidationError{
		Kind:   KindExcludedValue,
		Path:   path,
		Reason: fmt.Sprintf("value %v is excluded", value),
		Actual: value,
	}
}

func NotAllowedValue(path string, value any) *ValidationError {
	return &ValidationError{
		Kind:   KindNotAllowedValue,
		Path:   path,
		Reason: fmt.Sprintf("value %v is not allowed", value),
		Actual: value,
	}
}

func ExcessLength(path string, length, max int) *ValidationError {
	return &ValidationError{
		Kind:   KindExcessLength,
		Path:   path,
		Reason: fmt.Sprintf("length %d exceeds maximum %d", length, max),
		Actual: length,
		Limit:  max,
	}
}

func MissingLength(path string, length, min int) *ValidationError {
	return &ValidationError{
		Kind:   KindMissingLength,
		Path:   path,
		Reason: fmt.Sprintf("length %d is below minimum %d", length, min),
		Actual: length,
		Limit:  min,
	}
}

func ExcessSize(path string, value, max any) *ValidationError {
	return &ValidationError{
		Kind:   KindExcessSize,
		Path:   path,
		Reason: fmt.Sprintf("value %v exceeds maximum %v", value, max),
		Actual: value,
		Limit:  max,
	}
}

func MissingSize(path string, value, min any) *ValidationError {
	return &ValidationError{
		Kind:   KindMissingSize,
		Path:   path,
		Reason: fmt.Sprintf("value %v is below minimum %v", value, min),
		Actual: value,
		Limit:  min,
	}
}

func ExcludedCharacters(path, value, char string) *ValidationError {
	return &ValidationError{
		Kind:   KindExcludedCharacters,
		Path:   path,
		Reason: fmt.Sprintf("value %q contains excluded character %q", value, char),
		Actual: value,
		Limit:  char,
	}
}

func NotAllowedCharacter(path, char string) *ValidationError {
	return &ValidationError{
		Kind:   KindNotAllowedCharacter,
		Path:   path,
		Reason: fmt.Sprintf("character %q is not allowed", char),
		Actual: char,
	}
}

func InvalidItemSchema(path string, position int) *ValidationError {
	return &ValidationError{
		Kind:   KindInvalidItemSchema,
		Path:   path,
		Reason: fmt.Sprintf("item at position %d matches no allowed item", position),
		Actual: position,
	}
}

func InvalidValueSchema(path, key string) *ValidationError {
	return &ValidationError{
		Kind:   KindInvalidValueSchema,
		Path:   path,
		Reason: fmt.Sprintf("value for key %q matches no allowed item", key),
		Actual: key,
	}
}

// NestedSchema summarizes a record whose nested schema failed; cause is the
// first nested failure.
func NestedSchema(path string, cause error) *ValidationError {
	return &ValidationError{Kind: KindNestedSchema, Path: path, Reason: "nested schema validation failed", Cause: cause}
}

func MaxNestingExceeded(path string, max int) *ValidationError {
	return &ValidationError{
		Kind:   KindMaxNestingExceeded,
		Path:   path,
		Reason: fmt.Sprintf("maximum nesting depth %d exceeded", max),
		Limit:  max,
	}
}

func MalformedSchema(path, reason string) *ValidationError {
	return &ValidationError{Kind: KindMalformedSchema, Path: path, Reason: "malformed schema: " + reason}
}

func UnexpectedProcessing(path string, cause error) *ValidationError {
	return &ValidationError{Kind: KindUnexpectedProcessing, Path: path, Reason: "unexpected processing failure", Cause: cause}
}
