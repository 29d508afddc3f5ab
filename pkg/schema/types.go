package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Type is the closed set of value categories a field can declare.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
	TypeBoolean Type = "boolean"
	TypeList    Type = "list"
	TypeRecord  Type = "record"
)

// Types lists every supported category in declaration order.
var Types = []Type{TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeList, TypeRecord}

// typeAliases maps accepted spellings onto their category.
// The short forms match the names used by dynamically typed schema authors.
var typeAliases = map[string]Type{
	"string":  TypeString,
	"str":     TypeString,
	"integer": TypeInteger,
	"int":     TypeInteger,
	"float":   TypeFloat,
	"boolean": TypeBoolean,
	"bool":    TypeBoolean,
	"list":    TypeList,
	"record":  TypeRecord,
	"dict":    TypeRecord,
}

// Valid reports whether t is one of the supported categories.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeList, TypeRecord:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// IsNumber reports whether t is integer or float.
func (t Type) IsNumber() bool { return t == TypeInteger || t == TypeFloat }

// ParseType converts a type name (or one of its aliases) to a Type.
func ParseType(name string) (Type, error) {
	t, ok := typeAliases[name]
	if !ok {
		return "", UnsupportedType("", Type(name))
	}
	return t, nil
}

// TypeOf returns the runtime category of value.
// It returns false for nil and for values outside the supported categories.
//
// Integers and floats never widen into each other and booleans are never
// numbers. A json.Number is an integer when it parses as one. A map is a
// record only when every key is a string.
func TypeOf(value any) (Type, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return TypeString, true
	case bool:
		return TypeBoolean, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger, true
	case float32, float64:
		return TypeFloat, true
	case json.Number:
		if _, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return TypeInteger, true
		}
		return TypeFloat, true
	case []any:
		return TypeList, true
	case map[string]any:
		return TypeRecord, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeList, true
	case reflect.Map:
		switch rv.Type().Key().Kind() {
		case reflect.String:
			return TypeRecord, true
		case reflect.Interface:
			iter := rv.MapRange()
			for iter.Next() {
				if iter.Key().Elem().Kind() != reflect.String {
					return "", false
				}
			}
			return TypeRecord, true
		}
	}
	return "", false
}

// TypeName describes the runtime type of value for error messages.
func TypeName(value any) string {
	if value == nil {
		return "null"
	}
	if t, ok := TypeOf(value); ok {
		return string(t)
	}
	return fmt.Sprintf("%T", value)
}
