package schema

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with path",
			err:  NoField("user.name"),
			want: `field "user.name": required field is missing`,
		},
		{
			name: "root",
			err:  InvalidType("", TypeRecord, "x"),
			want: "expected record, got string",
		},
		{
			name: "null",
			err:  InvalidType("age", TypeInteger, nil),
			want: `field "age": null is not allowed for integer`,
		},
		{
			name: "limits",
			err:  ExcessLength("name", 6, 5),
			want: `field "name": length 6 exceeds maximum 5`,
		},
		{
			name: "with cause",
			err:  NestedSchema("addr", NoField("addr.city")),
			want: `field "addr": nested schema validation failed: field "addr.city": required field is missing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	nested := NestedSchema("addr", NoField("addr.city"))

	if !IsKind(nested, KindNestedSchema) {
		t.Error("IsKind should match the outer kind")
	}
	if !IsKind(nested, KindNoField) {
		t.Error("IsKind should match a wrapped cause")
	}
	if IsKind(nested, KindInvalidType) {
		t.Error("IsKind should not match an absent kind")
	}

	wrapped := fmt.Errorf("decode: %w", MalformedSchema("a", "missing type"))
	if !IsKind(wrapped, KindMalformedSchema) {
		t.Error("IsKind should see through fmt wrapping")
	}
	if IsKind(errors.New("plain"), KindNoField) {
		t.Error("IsKind should be false for foreign errors")
	}
}

func TestAggregateError(t *testing.T) {
	single := &AggregateError{Errors: []error{NoField("a")}}
	if single.Error() != NoField("a").Error() {
		t.Errorf("single Error() = %q", single.Error())
	}

	multi := &AggregateError{Errors: []error{NoField("a"), ExcessLength("b", 3, 2)}}
	msg := multi.Error()
	if !strings.HasPrefix(msg, "2 validation errors:") {
		t.Errorf("multi Error() = %q", msg)
	}
	if len(ValidationErrors(multi)) != 2 {
		t.Errorf("ValidationErrors() = %v", ValidationErrors(multi))
	}
	if ValidationErrors(errors.New("x")) != nil {
		t.Error("ValidationErrors() should be nil for foreign errors")
	}
	if !IsKind(multi, KindExcessLength) {
		t.Error("IsKind should reach errors inside an aggregate")
	}
}

func TestValidationError_At(t *testing.T) {
	orig := NoField("item")
	moved := orig.At("tags[2]")
	if moved.Path != "tags[2]" || orig.Path != "item" {
		t.Errorf("At() = %q, original = %q", moved.Path, orig.Path)
	}
}
