package schema

// Schema maps field names to their specs.
// Fields are kept in insertion order so validation reports errors
// deterministically.
//
// A Schema is configuration: build it once, then share it read-only.
type Schema struct {
	fields map[string]*FieldSpec
	order  []string
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{fields: make(map[string]*FieldSpec)}
}

// Add declares (or replaces) a field and returns the schema for chaining.
// A field may point back at its own schema to describe recursive shapes.
func (s *Schema) Add(name string, spec *FieldSpec) *Schema {
	if _, exists := s.fields[name]; !exists {
		s.order = append(s.order, name)
	}
	s.fields[name] = spec
	return s
}

// Field returns the spec declared for name.
func (s *Schema) Field(name string) (*FieldSpec, bool) {
	if s == nil {
		return nil, false
	}
	spec, ok := s.fields[name]
	return spec, ok
}

// Fields returns the declared field names in order.
func (s *Schema) Fields() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// FieldSpec describes one field: its type, presence rules and constraints.
// Nil pointers, nil slices and nil bounds mean "constraint not set". An
// empty, non-nil AllowedEqualities or AllowedItems allows nothing.
type FieldSpec struct {
	Type     Type
	Required bool

	// Default is injected when the field is absent and not required.
	Default any

	// TryTransformation enables coercion to Type before the type check.
	TryTransformation bool

	// Raise aborts the whole check on any error of this field.
	Raise bool

	Equal              any
	ExcludedEqualities []any
	AllowedEqualities  []any

	// ExcludedChars entries are substrings; an empty entry never matches.
	ExcludedChars []string
	AllowedChars  []string

	MaxLength *int
	MinLength *int

	// MaxSize and MinSize are inclusive bounds of any Go integer or float
	// type (or json.Number). Integer bounds compare exactly against integers.
	MaxSize any
	MinSize any

	// AllowedItems applies to list elements and record values.
	AllowedItems []ItemShape

	// Schema applies to record values as a whole.
	Schema *Schema
}

// ItemShape is one alternative of an allowed-items list:
// either a bare type or a full field spec.
type ItemShape struct {
	Type Type
	Spec *FieldSpec
}

// TypeShape accepts items whose runtime type is t.
func TypeShape(t Type) ItemShape {
	return ItemShape{Type: t}
}

// SpecShape accepts items that pass spec.
func SpecShape(spec *FieldSpec) ItemShape {
	return ItemShape{Spec: spec}
}

// SchemaShape accepts records that pass s.
func SchemaShape(s *Schema) ItemShape {
	return ItemShape{Spec: &FieldSpec{Type: TypeRecord, Required: true, Schema: s}}
}

func (sh ItemShape) String() string {
	if sh.Spec == nil {
		return string(sh.Type)
	}
	if sh.Spec.Schema != nil {
		return "schema"
	}
	return string(sh.Spec.Type) + " spec"
}

// Int returns a pointer to n, for length options.
func Int(n int) *int { return &n }
