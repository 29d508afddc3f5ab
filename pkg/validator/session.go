package validator

import (
	"fmt"
	"log/slog"

	"github.com/mohae/deepcopy"

	"github.com/aretw0/dischema/pkg/schema"
)

// session holds the mutable state of a single Check call.
type session struct {
	maxDepth int
	failFast bool
	logger   *slog.Logger

	depth  int
	errs   []*schema.ValidationError
	halted *schema.ValidationError // set by raise or fail-fast; ends the session
}

func (s *session) run(sch *schema.Schema, value any) *Result {
	data := canonical(deepcopy.Copy(value))

	rec, ok := data.(map[string]any)
	if !ok {
		return newResult(data, []*schema.ValidationError{schema.InvalidType("", schema.TypeRecord, data)})
	}

	s.checkSchema(sch, rec, "")
	if s.halted != nil {
		return newResult(rec, []*schema.ValidationError{s.halted})
	}
	return newResult(rec, s.errs)
}

// checkSchema runs the field pipeline for every declared field of sch.
// Keys of rec that sch does not declare are left untouched.
func (s *session) checkSchema(sch *schema.Schema, rec map[string]any, path string) {
	for _, name := range sch.Fields() {
		spec, _ := sch.Field(name)
		err := s.processField(spec, rec, name, joinKey(path, name))
		if s.halted != nil {
			return
		}
		if err != nil {
			s.report(spec, err)
			if s.halted != nil {
				return
			}
		}
	}
}

// report applies the error policy to a field-level error.
func (s *session) report(spec *schema.FieldSpec, err *schema.ValidationError) {
	switch {
	case spec != nil && spec.Raise:
		s.logger.Warn("field error escalated", "path", err.Path, "kind", err.Kind)
		s.halted = err
	case s.failFast:
		s.halted = err
	default:
		s.errs = append(s.errs, err)
	}
}

// diagnose records errors of failed allowed-items attempts. They do not
// decide the field's verdict, so fail-fast drops them and stops on the item
// error instead. A tripped nesting guard still stops a fail-fast check.
func (s *session) diagnose(errs []*schema.ValidationError) {
	for _, err := range errs {
		if !s.failFast {
			s.errs = append(s.errs, err)
			continue
		}
		if err.Kind == schema.KindMaxNestingExceeded {
			s.halted = err
			return
		}
	}
}

// attempt evaluates fn in an isolated sub-session that shares the current
// depth and policy. A raise or fail-fast stop inside it only ends the attempt.
func (s *session) attempt(fn func(sub *session)) []*schema.ValidationError {
	sub := &session{
		maxDepth: s.maxDepth,
		failFast: s.failFast,
		logger:   s.logger,
		depth:    s.depth,
	}
	fn(sub)
	if sub.halted != nil {
		return []*schema.ValidationError{sub.halted}
	}
	return sub.errs
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
