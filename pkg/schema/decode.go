package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// fieldOptions holds the scalar options of a field spec literal.
// Structural options (schema, allowed-items, default-value) are read by hand
// so shared and self-referencing maps keep their identity.
type fieldOptions struct {
	Required          bool `mapstructure:"required"`
	TryTransformation bool `mapstructure:"try-transformation"`
	Raise             bool `mapstructure:"raise"`

	Equal              any   `mapstructure:"equal"`
	ExcludedEqualities []any `mapstructure:"excluded-equalities"`
	AllowedEqualities  []any `mapstructure:"allowed-equalities"`

	ExcludedChars []string `mapstructure:"excluded-chars"`
	AllowedChars  []string `mapstructure:"allowed-chars"`

	MaxLength *int     `mapstructure:"max-length"`
	MinLength *int     `mapstructure:"min-length"`
	MaxSize   any      `mapstructure:"max-size"`
	MinSize   any      `mapstructure:"min-size"`
}

// Decode interprets a plain nested mapping literal as a Schema.
//
//	s, err := schema.Decode(map[string]any{
//	    "name": map[string]any{"type": "string", "required": true, "max-length": 5},
//	})
//
// Every field spec must declare "type" and "required". Options that do not
// apply to the declared type, and unknown keys, are ignored. Fields are
// ordered by name. A map that contains itself decodes into a recursive Schema.
func Decode(raw map[string]any) (*Schema, error) {
	d := &decoder{
		schemas: make(map[uintptr]*Schema),
		specs:   make(map[uintptr]*FieldSpec),
	}
	return d.schema(raw, "")
}

type decoder struct {
	schemas map[uintptr]*Schema
	specs   map[uintptr]*FieldSpec
}

func (d *decoder) schema(raw map[string]any, path string) (*Schema, error) {
	s := New()
	if raw == nil {
		return s, nil
	}
	ptr := reflect.ValueOf(raw).Pointer()
	if seen, ok := d.schemas[ptr]; ok {
		return seen, nil
	}
	d.schemas[ptr] = s

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fieldPath := joinPath(path, name)
		specRaw, ok := asMap(raw[name])
		if !ok {
			return nil, MalformedSchema(fieldPath, "field spec must be a mapping")
		}
		spec, err := d.fieldSpec(specRaw, fieldPath, false)
		if err != nil {
			return nil, err
		}
		s.Add(name, spec)
	}
	return s, nil
}

// fieldSpec decodes one spec. Item shapes are always present, so they may
// omit "required".
func (d *decoder) fieldSpec(raw map[string]any, path string, shape bool) (*FieldSpec, error) {
	ptr := reflect.ValueOf(raw).Pointer()
	if seen, ok := d.specs[ptr]; ok {
		return seen, nil
	}

	typeRaw, ok := raw[OptType]
	if !ok {
		return nil, MalformedSchema(path, `missing "type"`)
	}
	typeName, ok := typeRaw.(string)
	if !ok {
		return nil, MalformedSchema(path, `"type" must be a string`)
	}
	t, err := ParseType(typeName)
	if err != nil {
		return nil, UnsupportedType(path, Type(typeName))
	}
	if _, ok := raw[OptRequired]; !ok && !shape {
		return nil, MalformedSchema(path, `missing "required"`)
	}

	spec := &FieldSpec{Type: t, Required: shape}
	d.specs[ptr] = spec

	scalar := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case OptType, OptDefault, OptSchema, OptAllowedItems:
			continue
		}
		if Recognized(t, key) {
			scalar[key] = value
		}
	}

	opts := fieldOptions{Required: shape}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &opts})
	if err != nil {
		return nil, UnexpectedProcessing(path, err)
	}
	if err := dec.Decode(scalar); err != nil {
		return nil, MalformedSchema(path, err.Error())
	}

	spec.Required = opts.Required
	spec.TryTransformation = opts.TryTransformation
	spec.Raise = opts.Raise
	spec.Equal = opts.Equal
	spec.ExcludedEqualities = opts.ExcludedEqualities
	spec.AllowedEqualities = opts.AllowedEqualities
	spec.ExcludedChars = opts.ExcludedChars
	spec.AllowedChars = opts.AllowedChars
	spec.MaxLength = opts.MaxLength
	spec.MinLength = opts.MinLength
	spec.MaxSize = opts.MaxSize
	spec.MinSize = opts.MinSize

	for _, bound := range []struct {
		name  string
		value any
	}{{OptMaxSize, opts.MaxSize}, {OptMinSize, opts.MinSize}} {
		if bound.value == nil {
			continue
		}
		if t, ok := TypeOf(bound.value); !ok || !t.IsNumber() {
			return nil, MalformedSchema(path, fmt.Sprintf("%q must be a number", bound.name))
		}
	}
	for _, c := range opts.ExcludedChars {
		if c == "" {
			return nil, MalformedSchema(path, fmt.Sprintf("%q entries must not be empty", OptExcludedChars))
		}
	}

	if v, ok := raw[OptDefault]; ok {
		spec.Default = v
	}

	if v, ok := raw[OptSchema]; ok && Recognized(t, OptSchema) {
		m, ok := asMap(v)
		if !ok {
			return nil, MalformedSchema(path, `"schema" must be a mapping`)
		}
		if spec.Schema, err = d.schema(m, path); err != nil {
			return nil, err
		}
	}

	if v, ok := raw[OptAllowedItems]; ok && Recognized(t, OptAllowedItems) {
		if spec.AllowedItems, err = d.itemShapes(v, path); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

// itemShapes decodes an allowed-items list. A mapping entry with a string
// "type" is a field spec shape; any other mapping is a nested schema.
func (d *decoder) itemShapes(v any, path string) ([]ItemShape, error) {
	entries, ok := v.([]any)
	if !ok {
		return nil, MalformedSchema(path, `"allowed-items" must be a list`)
	}
	shapes := make([]ItemShape, 0, len(entries))
	for i, entry := range entries {
		entryPath := fmt.Sprintf("%s.%s[%d]", path, OptAllowedItems, i)
		switch e := entry.(type) {
		case string:
			t, err := ParseType(e)
			if err != nil {
				return nil, UnsupportedType(entryPath, Type(e))
			}
			shapes = append(shapes, TypeShape(t))
		default:
			m, ok := asMap(entry)
			if !ok {
				return nil, MalformedSchema(entryPath, "allowed item must be a type name or a mapping")
			}
			if _, isSpec := m[OptType].(string); isSpec {
				spec, err := d.fieldSpec(m, entryPath, true)
				if err != nil {
					return nil, err
				}
				shapes = append(shapes, SpecShape(spec))
				continue
			}
			nested, err := d.schema(m, entryPath)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, SchemaShape(nested))
		}
	}
	return shapes, nil
}

// asMap accepts the mapping shapes produced by literals and YAML/JSON decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
