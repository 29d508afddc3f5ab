// Package coerce converts values to a declared schema type.
//
// Conversions follow constructor semantics: "12" becomes 12 for an integer,
// 3.9 becomes 3, 1 becomes "1" for a string, a JSON object string becomes a
// record. Conversions are best effort and report failure as an error instead
// of guessing.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/aretw0/dischema/pkg/schema"
)

// ErrNull is returned when asked to convert nil. Null never converts.
var ErrNull = errors.New("null cannot be converted")

// converters is read-only after package initialization.
var converters = map[schema.Type]func(any) (any, error){
	schema.TypeString:  toString,
	schema.TypeInteger: toInteger,
	schema.TypeFloat:   toFloat,
	schema.TypeBoolean: toBoolean,
	schema.TypeList:    toList,
	schema.TypeRecord:  toRecord,
}

// To converts value to type t.
// The result, on success, has runtime type t according to schema.TypeOf.
func To(t schema.Type, value any) (any, error) {
	convert, ok := converters[t]
	if !ok {
		return nil, schema.UnsupportedType("", t)
	}
	if value == nil {
		return nil, ErrNull
	}
	if actual, ok := schema.TypeOf(value); ok && actual == t {
		return value, nil
	}
	out, err := convert(value)
	if err != nil {
		return nil, fmt.Errorf("convert %s to %s: %w", schema.TypeName(value), t, err)
	}
	return out, nil
}

func toString(v any) (any, error) {
	return cast.ToStringE(v)
}

// toInteger reads strings as base 10 only, so "010" is 10 and "0x10" fails.
// cast would honour base prefixes.
func toInteger(v any) (any, error) {
	switch n := v.(type) {
	case string:
		return parseDecimal(n)
	case json.Number:
		if i, err := parseDecimal(n.String()); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, err
		}
		return int(f), nil
	}
	return cast.ToIntE(v)
}

func parseDecimal(s string) (any, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return nil, err
	}
	return int(i), nil
}

func toFloat(v any) (any, error) {
	return cast.ToFloat64E(v)
}

func toBoolean(v any) (any, error) {
	return cast.ToBoolE(v)
}

// toList splits a string into its characters; other sequences convert as is.
func toList(v any) (any, error) {
	if s, ok := v.(string); ok {
		out := make([]any, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out, nil
	}
	return cast.ToSliceE(v)
}

// toRecord accepts string-keyed maps and JSON object strings.
func toRecord(v any) (any, error) {
	return cast.ToStringMapE(v)
}
