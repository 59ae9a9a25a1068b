// Package schema derives per-section-type validation rules from field
// definitions at edit time. There is no fixed compile-time shape for section
// data; every section type carries its own field list and the schema is
// rebuilt whenever a section is opened for editing.
package schema

import (
	"fmt"
	"regexp"

	"content-commerce-backend/internal/sections"
)

// FieldError reports one validation failure, keyed by the field name used in
// the section data map.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type fieldRule struct {
	def     sections.FieldDefinition
	check   checkFunc
	pattern *regexp.Regexp
}

// checkFunc validates and coerces a raw value. It returns the coerced value
// or a human-readable problem description.
type checkFunc func(rule fieldRule, value interface{}) (interface{}, string)

// Schema validates a candidate data map against one section type's fields.
type Schema struct {
	rules []fieldRule
}

// Build derives a schema from field definitions. Building never fails: a
// field with an unrecognized type falls back to an unconstrained string
// check, and an uncompilable pattern is ignored.
func Build(fields []sections.FieldDefinition) *Schema {
	rules := make([]fieldRule, 0, len(fields))
	for _, def := range fields {
		rule := fieldRule{def: def, check: checkForType(def.Type)}
		if def.Validation != nil && def.Validation.Pattern != "" {
			if re, err := regexp.Compile(def.Validation.Pattern); err == nil {
				rule.pattern = re
			}
		}
		rules = append(rules, rule)
	}
	return &Schema{rules: rules}
}

// Validate checks a candidate data map. On success it returns a cleaned copy
// containing only the declared fields, with number values coerced; unknown
// keys are dropped. On failure it returns the per-field errors and a nil map.
func (s *Schema) Validate(data map[string]interface{}) (map[string]interface{}, []FieldError) {
	if data == nil {
		data = map[string]interface{}{}
	}

	cleaned := make(map[string]interface{}, len(s.rules))
	var errs []FieldError

	for _, rule := range s.rules {
		value, present := data[rule.def.Name]
		if !present || value == nil {
			if rule.def.Required {
				errs = append(errs, FieldError{Field: rule.def.Name, Message: "field is required"})
			}
			continue
		}

		coerced, problem := rule.check(rule, value)
		if problem != "" {
			errs = append(errs, FieldError{Field: rule.def.Name, Message: problem})
			continue
		}
		cleaned[rule.def.Name] = coerced
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cleaned, nil
}

func checkForType(t sections.FieldType) checkFunc {
	switch t {
	case sections.FieldNumber:
		return checkNumber
	case sections.FieldBoolean:
		return checkBoolean
	case sections.FieldText, sections.FieldTextarea, sections.FieldSelect,
		sections.FieldImage, sections.FieldColor:
		return checkString
	default:
		// Unrecognized field types behave as unconstrained strings.
		return checkLooseString
	}
}
