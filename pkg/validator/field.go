package validator

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/aretw0/dischema/pkg/coerce"
	"github.com/aretw0/dischema/pkg/schema"
)

// checkFunc applies the constraints of one type to a value already known to
// have that type.
type checkFunc func(s *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError

// checks dispatches on the declared type. Read-only after initialization.
var checks map[schema.Type]checkFunc

func init() {
	checks = map[schema.Type]checkFunc{
		schema.TypeString:  checkString,
		schema.TypeInteger: checkNumber,
		schema.TypeFloat:   checkNumber,
		schema.TypeBoolean: checkBoolean,
		schema.TypeList:    checkList,
		schema.TypeRecord:  checkRecord,
	}
}

// processField runs the pipeline for holder[key]:
// existence/default, coercion, type check, then type constraints.
// Updated values (defaults, coercions) are written back into holder.
func (s *session) processField(spec *schema.FieldSpec, holder map[string]any, key, path string) (err *schema.ValidationError) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("recovered from field processing panic", "path", path, "panic", r)
			err = schema.UnexpectedProcessing(path, fmt.Errorf("%v", r))
		}
	}()

	if spec == nil || spec.Type == "" {
		return schema.MalformedSchema(path, "field spec must declare a type")
	}
	check, ok := checks[spec.Type]
	if !ok {
		return schema.UnsupportedType(path, spec.Type)
	}

	value, present := holder[key]
	if !present {
		if spec.Required {
			return schema.NoField(path)
		}
		if spec.Default == nil {
			return nil
		}
		value = deepcopy.Copy(spec.Default)
	}

	if spec.TryTransformation && value != nil {
		if actual, ok := schema.TypeOf(value); !ok || actual != spec.Type {
			converted, cerr := coerce.To(spec.Type, value)
			if cerr != nil {
				e := schema.InvalidType(path, spec.Type, value)
				e.Cause = cerr
				return e
			}
			value = converted
		}
	}

	value = canonical(value)
	holder[key] = value

	if actual, ok := schema.TypeOf(value); !ok || actual != spec.Type {
		return schema.InvalidType(path, spec.Type, value)
	}

	return check(s, spec, value, path)
}
