package schema

import (
	"testing"

	"content-commerce-backend/internal/sections"
)

func floatPtr(v float64) *float64 { return &v }

func featuredFields() []sections.FieldDefinition {
	return []sections.FieldDefinition{
		{Name: "title", Type: sections.FieldText, Required: true},
		{Name: "contentType", Type: sections.FieldSelect, Options: []string{"blog", "products", "videos"}, Required: true},
		{Name: "limit", Type: sections.FieldNumber, Validation: &sections.FieldValidation{Min: floatPtr(1), Max: floatPtr(12)}},
	}
}

func TestValidate_AcceptsWellFormedData(t *testing.T) {
	s := Build(featuredFields())

	cleaned, errs := s.Validate(map[string]interface{}{
		"title":       "Produtos Recomendados",
		"contentType": "products",
		"limit":       float64(4),
	})
	if errs != nil {
		t.Fatalf("expected data to validate, got %v", errs)
	}
	if cleaned["limit"] != float64(4) {
		t.Fatalf("expected limit to survive validation, got %v", cleaned["limit"])
	}
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	s := Build(featuredFields())

	_, errs := s.Validate(map[string]interface{}{"contentType": "blog"})
	if len(errs) != 1 || errs[0].Field != "title" {
		t.Fatalf("expected a single error on title, got %v", errs)
	}
}

func TestValidate_NumberCoercionAndRange(t *testing.T) {
	s := Build(featuredFields())

	cleaned, errs := s.Validate(map[string]interface{}{
		"title":       "Posts",
		"contentType": "blog",
		"limit":       "6",
	})
	if errs != nil {
		t.Fatalf("expected numeric string to coerce, got %v", errs)
	}
	if cleaned["limit"] != float64(6) {
		t.Fatalf("expected coerced float64 limit, got %v (%T)", cleaned["limit"], cleaned["limit"])
	}

	if _, errs := s.Validate(map[string]interface{}{
		"title":       "Posts",
		"contentType": "blog",
		"limit":       float64(40),
	}); len(errs) != 1 || errs[0].Field != "limit" {
		t.Fatalf("expected limit range error, got %v", errs)
	}
}

func TestValidate_DropsUndeclaredFields(t *testing.T) {
	s := Build(featuredFields())

	cleaned, errs := s.Validate(map[string]interface{}{
		"title":       "Posts",
		"contentType": "blog",
		"legacyField": "should vanish",
	})
	if errs != nil {
		t.Fatalf("expected data to validate, got %v", errs)
	}
	if _, ok := cleaned["legacyField"]; ok {
		t.Fatalf("expected undeclared field to be dropped")
	}
}

func TestValidate_OptionalFieldAbsent(t *testing.T) {
	s := Build(featuredFields())

	cleaned, errs := s.Validate(map[string]interface{}{
		"title":       "Posts",
		"contentType": "blog",
	})
	if errs != nil {
		t.Fatalf("expected optional limit to be skippable, got %v", errs)
	}
	if _, ok := cleaned["limit"]; ok {
		t.Fatalf("expected absent optional field to stay absent")
	}
}

func TestBuild_UnknownFieldTypeFallsBackToString(t *testing.T) {
	s := Build([]sections.FieldDefinition{
		{Name: "mystery", Type: sections.FieldType("richtext"), Required: true},
	})

	if _, errs := s.Validate(map[string]interface{}{"mystery": "anything goes"}); errs != nil {
		t.Fatalf("expected unknown type to act as unconstrained string, got %v", errs)
	}
	if _, errs := s.Validate(map[string]interface{}{"mystery": 42}); len(errs) != 1 {
		t.Fatalf("expected non-string to fail the fallback check, got %v", errs)
	}
}

func TestBuild_PatternConstraint(t *testing.T) {
	s := Build([]sections.FieldDefinition{
		{Name: "color", Type: sections.FieldColor, Validation: &sections.FieldValidation{Pattern: `^#[0-9a-f]{6}$`}},
	})

	if _, errs := s.Validate(map[string]interface{}{"color": "#aabbcc"}); errs != nil {
		t.Fatalf("expected matching value to pass, got %v", errs)
	}
	if _, errs := s.Validate(map[string]interface{}{"color": "red"}); len(errs) != 1 {
		t.Fatalf("expected pattern mismatch error, got %v", errs)
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	fields := featuredFields()
	first := Build(fields)
	second := Build(fields)

	inputs := []map[string]interface{}{
		{"title": "A", "contentType": "blog"},
		{"title": "A", "contentType": "blog", "limit": float64(99)},
		{"contentType": "blog"},
	}
	for _, input := range inputs {
		_, errsA := first.Validate(input)
		_, errsB := second.Validate(input)
		if (errsA == nil) != (errsB == nil) || len(errsA) != len(errsB) {
			t.Fatalf("expected identical verdicts for %v: %v vs %v", input, errsA, errsB)
		}
	}
}
