package service

import (
	"fmt"
	"strings"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/schema"
	"content-commerce-backend/internal/sections"
)

// SectionValidationError aggregates the per-field failures of one section
// edit so handlers can return them all at once.
type SectionValidationError struct {
	Fields []schema.FieldError
}

func (e *SectionValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "section data is invalid"
	}

	messages := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "section data is invalid: " + strings.Join(messages, "; ")
}

// validateSectionData checks data against the type's derived schema and
// returns the cleaned map, stripped of undeclared keys.
func validateSectionData(desc *sections.TypeDescriptor, data map[string]interface{}) (map[string]interface{}, error) {
	if data == nil {
		data = map[string]interface{}{}
	}

	cleaned, fieldErrors := schema.Build(desc.Fields).Validate(data)
	if len(fieldErrors) > 0 {
		return nil, &SectionValidationError{Fields: fieldErrors}
	}
	return cleaned, nil
}

// ValidateSection dry-runs a section edit without touching any page. It
// returns the cleaned data the edit would persist.
func (s *PageService) ValidateSection(req models.ValidateSectionRequest) (map[string]interface{}, error) {
	desc, ok := s.registry.Lookup(req.Type)
	if !ok {
		return nil, fmt.Errorf("unknown section type: %s", req.Type)
	}
	return validateSectionData(desc, req.Data)
}
