package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dischema/pkg/schema"
	"github.com/aretw0/dischema/pkg/validator"
)

func TestCheckList_AllowedItemsOr(t *testing.T) {
	inner := schema.New().Add("id", &schema.FieldSpec{Type: schema.TypeInteger, Required: true})
	s := schema.New().Add("items", &schema.FieldSpec{
		Type:     schema.TypeList,
		Required: true,
		AllowedItems: []schema.ItemShape{
			schema.TypeShape(schema.TypeInteger),
			schema.SchemaShape(inner),
		},
	})

	res := validator.Check(s, map[string]any{"items": []any{1, map[string]any{"id": 2}}})
	assert.True(t, res.Valid, "errors: %v", res.Errors)

	res = validator.Check(s, map[string]any{"items": []any{1, "two"}})
	require.NotEmpty(t, res.Errors)
	last := res.Errors[len(res.Errors)-1]
	assert.Equal(t, schema.KindInvalidItemSchema, last.Kind)
	assert.Equal(t, "items[1]", last.Path)
	assert.Equal(t, 1, last.Actual)
	assert.Len(t, res.ErrorsAt("items[1]"), 2, "schema attempt error plus item error")
}

func TestCheckList_EmptyAllowedItemsRejectsElements(t *testing.T) {
	spec := &schema.FieldSpec{Type: schema.TypeList, AllowedItems: []schema.ItemShape{}}

	assert.Empty(t, checkOne(t, spec, []any{}))
	assert.Equal(t, []schema.Kind{schema.KindInvalidItemSchema}, checkOne(t, spec, []any{1}))
}

func TestCheckList_StopsAtFirstBadElement(t *testing.T) {
	spec := &schema.FieldSpec{
		Type:         schema.TypeList,
		AllowedItems: []schema.ItemShape{schema.TypeShape(schema.TypeString)},
	}

	s := schema.New().Add("v", spec)
	res := validator.Check(s, map[string]any{"v": []any{"a", 1, 2}})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "v[1]", res.Errors[0].Path)
}

func TestCheckList_LengthBeforeItems(t *testing.T) {
	spec := &schema.FieldSpec{
		Type:         schema.TypeList,
		MaxLength:    schema.Int(1),
		AllowedItems: []schema.ItemShape{schema.TypeShape(schema.TypeString)},
	}

	assert.Equal(t, []schema.Kind{schema.KindExcessLength}, checkOne(t, spec, []any{1, 2}))
}

func TestCheckList_FailFastReportsItemError(t *testing.T) {
	inner := schema.New().
		Add("a", &schema.FieldSpec{Type: schema.TypeString, Required: true}).
		Add("b", &schema.FieldSpec{Type: schema.TypeString, Required: true})
	ids := schema.New().Add("id", &schema.FieldSpec{Type: schema.TypeInteger, Required: true})

	tests := []struct {
		name   string
		shapes []schema.ItemShape
		items  []any
		path   string
	}{
		{"schema attempt fails inside", []schema.ItemShape{schema.SchemaShape(inner)}, []any{map[string]any{}}, "items[0]"},
		{"schema attempt fails on type", []schema.ItemShape{schema.TypeShape(schema.TypeInteger), schema.SchemaShape(ids)}, []any{1, "two"}, "items[1]"},
		{"spec attempt fails", []schema.ItemShape{schema.SpecShape(&schema.FieldSpec{Type: schema.TypeString, MaxLength: schema.Int(1)})}, []any{"ab"}, "items[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.New().Add("items", &schema.FieldSpec{
				Type:         schema.TypeList,
				Required:     true,
				AllowedItems: tt.shapes,
			})

			res := validator.Check(s, map[string]any{"items": tt.items}, validator.WithStopOnFirstError(true))

			require.Len(t, res.Errors, 1)
			assert.Equal(t, schema.KindInvalidItemSchema, res.Errors[0].Kind)
			assert.Equal(t, tt.path, res.Errors[0].Path)
		})
	}
}

func TestCheckRecord_FailFastReportsValueError(t *testing.T) {
	ids := schema.New().Add("id", &schema.FieldSpec{Type: schema.TypeInteger, Required: true})
	s := schema.New().Add("rec", &schema.FieldSpec{
		Type:         schema.TypeRecord,
		Required:     true,
		AllowedItems: []schema.ItemShape{schema.SchemaShape(ids)},
	})

	res := validator.Check(s, map[string]any{"rec": map[string]any{"k": map[string]any{}}},
		validator.WithStopOnFirstError(true))

	assert.Equal(t, []schema.Kind{schema.KindInvalidValueSchema}, res.Kinds())
	assert.Equal(t, "rec.k", res.Errors[0].Path)
}

func TestCheckList_RaiseInsideAttemptOnlyEndsAttempt(t *testing.T) {
	strict := &schema.FieldSpec{Type: schema.TypeString, MaxLength: schema.Int(1), Raise: true}
	s := schema.New().
		Add("items", &schema.FieldSpec{
			Type:     schema.TypeList,
			Required: true,
			AllowedItems: []schema.ItemShape{
				schema.SpecShape(strict),
				schema.TypeShape(schema.TypeString),
			},
		}).
		Add("name", &schema.FieldSpec{Type: schema.TypeString, Required: true})

	res := validator.Check(s, map[string]any{"items": []any{"a", "long"}})

	assert.Equal(t, []schema.Kind{schema.KindNoField}, res.Kinds())
	assert.Equal(t, "name", res.Errors[0].Path)
}

func TestCheckRecord_SchemaAndAllowedItems(t *testing.T) {
	inner := schema.New().Add("id", &schema.FieldSpec{Type: schema.TypeInteger, Required: true})
	s := schema.New().Add("rec", &schema.FieldSpec{
		Type:         schema.TypeRecord,
		Required:     true,
		Schema:       inner,
		AllowedItems: []schema.ItemShape{schema.TypeShape(schema.TypeInteger)},
	})

	res := validator.Check(s, map[string]any{"rec": map[string]any{"id": 1, "extra": 2}})
	assert.True(t, res.Valid, "errors: %v", res.Errors)

	res = validator.Check(s, map[string]any{"rec": map[string]any{"id": 1, "extra": "x"}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, schema.KindInvalidValueSchema, res.Errors[0].Kind)
	assert.Equal(t, "rec.extra", res.Errors[0].Path)
	assert.Equal(t, "extra", res.Errors[0].Actual)

	// a failing nested schema stops before allowed-items
	res = validator.Check(s, map[string]any{"rec": map[string]any{"extra": "x"}})
	assert.Equal(t, []schema.Kind{schema.KindNoField, schema.KindNestedSchema}, res.Kinds())
}

func TestCheckRecord_NestedSchemaWrapsFirstError(t *testing.T) {
	inner := schema.New().
		Add("city", &schema.FieldSpec{Type: schema.TypeString, Required: true}).
		Add("zip", &schema.FieldSpec{Type: schema.TypeString, Required: true})
	s := schema.New().Add("addr", &schema.FieldSpec{Type: schema.TypeRecord, Required: true, Schema: inner})

	res := validator.Check(s, map[string]any{"addr": map[string]any{}})

	require.Len(t, res.Errors, 3)
	nested := res.Errors[2]
	assert.Equal(t, schema.KindNestedSchema, nested.Kind)
	assert.Equal(t, "addr", nested.Path)
	assert.Same(t, res.Errors[0], nested.Cause)
	assert.True(t, schema.IsKind(nested, schema.KindNoField))
}

func TestCheckRecord_AppliesNestedDefaults(t *testing.T) {
	inner := schema.New().Add("port", &schema.FieldSpec{Type: schema.TypeInteger, Default: 8080})
	s := schema.New().Add("server", &schema.FieldSpec{Type: schema.TypeRecord, Required: true, Schema: inner})

	res := validator.Check(s, map[string]any{"server": map[string]any{}})

	require.True(t, res.Valid)
	assert.Equal(t, map[string]any{"server": map[string]any{"port": 8080}}, res.Data)
}

func TestCheckRecord_Length(t *testing.T) {
	spec := &schema.FieldSpec{Type: schema.TypeRecord, MaxLength: schema.Int(1), MinLength: schema.Int(1)}

	assert.Empty(t, checkOne(t, spec, map[string]any{"a": 1}))
	assert.Equal(t, []schema.Kind{schema.KindExcessLength}, checkOne(t, spec, map[string]any{"a": 1, "b": 2}))
	assert.Equal(t, []schema.Kind{schema.KindMissingLength}, checkOne(t, spec, map[string]any{}))
}

// nestRecords returns {"child": {"child": ...}} n levels deep.
func nestRecords(n int) map[string]any {
	root := map[string]any{}
	cur := root
	for i := 0; i < n; i++ {
		next := map[string]any{}
		cur["child"] = next
		cur = next
	}
	return root
}

// nestLists returns [[...[1]...]] n levels deep.
func nestLists(n int) []any {
	var v any = 1
	for i := 0; i < n; i++ {
		v = []any{v}
	}
	return v.([]any)
}

func recursiveSchema() *schema.Schema {
	s := schema.New()
	s.Add("child", &schema.FieldSpec{Type: schema.TypeRecord, Schema: s})
	return s
}

func TestNesting_RecursiveSchemaIsBounded(t *testing.T) {
	s := recursiveSchema()

	res := validator.Check(s, nestRecords(150))
	assert.Contains(t, res.Kinds(), schema.KindMaxNestingExceeded)

	res = validator.Check(s, nestRecords(150), validator.WithStopOnFirstError(true))
	assert.Equal(t, []schema.Kind{schema.KindMaxNestingExceeded}, res.Kinds())

	res = validator.Check(s, nestRecords(50))
	assert.True(t, res.Valid)
}

func TestNesting_RecordDepthReport(t *testing.T) {
	res := validator.Check(recursiveSchema(), nestRecords(10), validator.WithMaxDepth(3))

	path := func(n int) string {
		return strings.TrimSuffix(strings.Repeat("child.", n), ".")
	}
	assert.Equal(t, []schema.Kind{
		schema.KindMaxNestingExceeded,
		schema.KindNestedSchema,
		schema.KindNestedSchema,
		schema.KindNestedSchema,
	}, res.Kinds())
	assert.Equal(t, path(4), res.Errors[0].Path)
	assert.Equal(t, 3, res.Errors[0].Limit)
	assert.Equal(t, path(1), res.Errors[3].Path)
}

func TestNesting_RecursiveAllowedItemsIsBounded(t *testing.T) {
	tree := &schema.FieldSpec{Type: schema.TypeList, Required: true}
	tree.AllowedItems = []schema.ItemShape{schema.TypeShape(schema.TypeInteger), schema.SpecShape(tree)}
	s := schema.New().Add("tree", tree)

	res := validator.Check(s, map[string]any{"tree": nestLists(3)}, validator.WithMaxDepth(3))
	assert.True(t, res.Valid, "errors: %v", res.Errors)

	res = validator.Check(s, map[string]any{"tree": nestLists(10)}, validator.WithMaxDepth(3))
	assert.Equal(t, []schema.Kind{
		schema.KindMaxNestingExceeded,
		schema.KindInvalidItemSchema,
		schema.KindInvalidItemSchema,
		schema.KindInvalidItemSchema,
		schema.KindInvalidItemSchema,
	}, res.Kinds())
	assert.Equal(t, "tree[0][0][0][0]", res.Errors[0].Path)
	assert.Equal(t, "tree[0]", res.Errors[4].Path)

	res = validator.Check(s, map[string]any{"tree": nestLists(10)},
		validator.WithMaxDepth(3), validator.WithStopOnFirstError(true))
	assert.Equal(t, []schema.Kind{schema.KindMaxNestingExceeded}, res.Kinds())
}
