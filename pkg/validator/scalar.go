package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/dischema/pkg/schema"
)

// checkString applies, in order: excluded-chars, allowed-chars, equal,
// excluded-equalities, allowed-equalities, max-length, min-length.
func checkString(_ *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	str := value.(string)

	for _, c := range spec.ExcludedChars {
		if c != "" && strings.Contains(str, c) {
			return schema.ExcludedCharacters(path, str, c)
		}
	}

	if spec.AllowedChars != nil {
		allowed := make(map[string]struct{}, len(spec.AllowedChars))
		for _, c := range spec.AllowedChars {
			allowed[c] = struct{}{}
		}
		for _, r := range str {
			if _, ok := allowed[string(r)]; !ok {
				return schema.NotAllowedCharacter(path, string(r))
			}
		}
	}

	if err := checkEqualities(spec, str, path); err != nil {
		return err
	}

	return checkLength(spec, utf8.RuneCountInString(str), path)
}

// checkNumber serves both integer and float fields. Size bounds are inclusive.
func checkNumber(_ *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	if err := checkEqualities(spec, value, path); err != nil {
		return err
	}

	if spec.MaxSize != nil {
		c, ok := compareNumbers(value, spec.MaxSize)
		if !ok {
			return schema.MalformedSchema(path, `"max-size" must be a number`)
		}
		if c > 0 {
			return schema.ExcessSize(path, value, spec.MaxSize)
		}
	}
	if spec.MinSize != nil {
		c, ok := compareNumbers(value, spec.MinSize)
		if !ok {
			return schema.MalformedSchema(path, `"min-size" must be a number`)
		}
		if c < 0 {
			return schema.MissingSize(path, value, spec.MinSize)
		}
	}
	return nil
}

func checkBoolean(_ *session, spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	if spec.Equal != nil && !equalValues(value, spec.Equal) {
		return schema.NoEqual(path, value, spec.Equal)
	}
	return nil
}

// checkEqualities applies equal, excluded-equalities and allowed-equalities.
func checkEqualities(spec *schema.FieldSpec, value any, path string) *schema.ValidationError {
	if spec.Equal != nil && !equalValues(value, spec.Equal) {
		return schema.NoEqual(path, value, spec.Equal)
	}
	if containsValue(spec.ExcludedEqualities, value) {
		return schema.ExcludedValue(path, value)
	}
	if spec.AllowedEqualities != nil && !containsValue(spec.AllowedEqualities, value) {
		return schema.NotAllowedValue(path, value)
	}
	return nil
}
