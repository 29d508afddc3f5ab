package validator

import "github.com/aretw0/dischema/pkg/schema"

// enter claims one nesting level for a nested evaluation at path.
// Callers must pair a nil return with leave.
func (s *session) enter(path string) *schema.ValidationError {
	if s.depth >= s.maxDepth {
		s.logger.Debug("nesting limit reached", "path", path, "max", s.maxDepth)
		return schema.MaxNestingExceeded(path, s.maxDepth)
	}
	s.depth++
	return nil
}

func (s *session) leave() {
	s.depth--
}
