package validator

import (
	"sort"

	"github.com/mohae/deepcopy"

	"github.com/aretw0/dischema/pkg/schema"
)

// itemKey names the single field an element is wrapped in when it is
// checked against a field spec shape.
const itemKey = "item"

func checkList(s *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	items := value.([]any)

	if err := checkLength(spec, len(items), path); err != nil {
		return err
	}
	if spec.AllowedItems == nil {
		return nil
	}

	for i, item := range items {
		itemPath := joinIndex(path, i)
		matched, diagnostics, ok := s.matchShapes(spec.AllowedItems, item, itemPath)
		if !ok {
			s.diagnose(diagnostics)
			if s.halted != nil {
				return nil
			}
			return schema.InvalidItemSchema(itemPath, i)
		}
		items[i] = matched
	}
	return nil
}

// checkRecord applies length bounds, then the nested schema to the whole
// record, then allowed-items to every value (in key order).
func checkRecord(s *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	rec := value.(map[string]any)

	if err := checkLength(spec, len(rec), path); err != nil {
		return err
	}

	if spec.Schema != nil {
		if err := s.enter(path); err != nil {
			return err
		}
		before := len(s.errs)
		s.checkSchema(spec.Schema, rec, path)
		s.leave()

		if s.halted != nil {
			return nil
		}
		if len(s.errs) > before {
			return schema.NestedSchema(path, s.errs[before])
		}
	}

	if spec.AllowedItems == nil {
		return nil
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		keyPath := joinKey(path, key)
		matched, diagnostics, ok := s.matchShapes(spec.AllowedItems, rec[key], keyPath)
		if !ok {
			s.diagnose(diagnostics)
			if s.halted != nil {
				return nil
			}
			return schema.InvalidValueSchema(keyPath, key)
		}
		rec[key] = matched
	}
	return nil
}

// matchShapes tries each shape in order and returns the (possibly coerced)
// value of the first match. When nothing matches it returns the errors of
// every failed spec attempt.
func (s *session) matchShapes(shapes []schema.ItemShape, value any, path string) (any, []*schema.ValidationError, bool) {
	var diagnostics []*schema.ValidationError

	for _, shape := range shapes {
		if shape.Spec == nil {
			if t, ok := schema.TypeOf(value); ok && t == shape.Type {
				return value, nil, true
			}
			continue
		}

		spec := shape.Spec
		wrapped := map[string]any{itemKey: deepcopy.Copy(value)}
		errs := s.attempt(func(sub *session) {
			// Record schemas claim their own level in checkRecord.
			if spec.Schema == nil {
				if err := sub.enter(path); err != nil {
					sub.report(nil, err)
					return
				}
				defer sub.leave()
			}
			if err := sub.processField(spec, wrapped, itemKey, path); err != nil {
				sub.report(spec, err)
			}
		})
		if len(errs) == 0 {
			return wrapped[itemKey], nil, true
		}
		diagnostics = append(diagnostics, errs...)
	}

	return value, diagnostics, false
}

func checkLength(spec *schema.FieldSpec, n int, path string) *schema.ValidationError {
	if spec.MaxLength != nil && n > *spec.MaxLength {
		return schema.ExcessLength(path, n, *spec.MaxLength)
	}
	if spec.MinLength != nil && n < *spec.MinLength {
		return schema.MissingLength(path, n, *spec.MinLength)
	}
	return nil
}
