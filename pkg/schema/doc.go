// Package schema describes the expected shape of structured data.
//
// A Schema maps field names to FieldSpecs. Each spec declares a type from a
// closed set (string, integer, float, boolean, list, record), whether the
// field is required, and type-specific constraints such as lengths, sizes,
// character sets or allowed values. Lists and records may nest further
// schemas through allowed-items and schema.
//
// Schemas can be built in Go:
//
//	address := schema.New().
//	    Add("city", &schema.FieldSpec{Type: schema.TypeString, Required: true})
//
//	s := schema.New().
//	    Add("name", &schema.FieldSpec{Type: schema.TypeString, Required: true, MaxLength: schema.Int(5)}).
//	    Add("addr", &schema.FieldSpec{Type: schema.TypeRecord, Required: true, Schema: address})
//
// or decoded from the plain mapping literal a caller authors:
//
//	s, err := schema.Decode(map[string]any{
//	    "name": map[string]any{"type": "string", "required": true, "max-length": 5},
//	    "tags": map[string]any{"type": "list", "required": false, "allowed-items": []any{"string"}},
//	})
//
// The package also defines the error model shared by decoding and
// validation: every failure is a *ValidationError carrying a Kind and the
// dotted/indexed path of the offending field.
package schema
