package schema

import "sort"

// Option names recognized in a field spec literal.
const (
	OptType              = "type"
	OptRequired          = "required"
	OptDefault           = "default-value"
	OptTryTransformation = "try-transformation"
	OptRaise             = "raise"

	OptEqual              = "equal"
	OptExcludedEqualities = "excluded-equalities"
	OptAllowedEqualities  = "allowed-equalities"
	OptExcludedChars      = "excluded-chars"
	OptAllowedChars       = "allowed-chars"
	OptMaxLength          = "max-length"
	OptMinLength          = "min-length"
	OptMaxSize            = "max-size"
	OptMinSize            = "min-size"
	OptAllowedItems       = "allowed-items"
	OptSchema             = "schema"
)

// Category groups the options that apply together.
type Category string

const (
	CategoryField   Category = "field"
	CategoryString  Category = "string"
	CategoryNumber  Category = "number"
	CategoryBoolean Category = "boolean"
	CategoryList    Category = "list"
	CategoryRecord  Category = "record"
)

// registry is read-only after package initialization.
var registry = map[Category]map[string]struct{}{
	CategoryField: set(OptType, OptRequired, OptDefault, OptTryTransformation, OptRaise),
	CategoryString: set(OptExcludedChars, OptAllowedChars, OptEqual,
		OptExcludedEqualities, OptAllowedEqualities, OptMaxLength, OptMinLength),
	CategoryNumber:  set(OptEqual, OptExcludedEqualities, OptAllowedEqualities, OptMaxSize, OptMinSize),
	CategoryBoolean: set(OptEqual),
	CategoryList:    set(OptMaxLength, OptMinLength, OptAllowedItems),
	CategoryRecord:  set(OptMaxLength, OptMinLength, OptSchema, OptAllowedItems),
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// CategoryOf returns the option category for a field type.
func CategoryOf(t Type) Category {
	switch t {
	case TypeString:
		return CategoryString
	case TypeInteger, TypeFloat:
		return CategoryNumber
	case TypeBoolean:
		return CategoryBoolean
	case TypeList:
		return CategoryList
	case TypeRecord:
		return CategoryRecord
	}
	return ""
}

// Options returns the sorted option names of a category.
func Options(c Category) []string {
	names := make([]string, 0, len(registry[c]))
	for n := range registry[c] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Recognized reports whether option applies to a field of type t,
// either as a field-level option or as one of the type's constraints.
func Recognized(t Type, option string) bool {
	if _, ok := registry[CategoryField][option]; ok {
		return true
	}
	_, ok := registry[CategoryOf(t)][option]
	return ok
}
