package sections

import "testing"

func TestRegistry_LookupUnknownTypeDoesNotPanic(t *testing.T) {
	reg := DefaultRegistry()

	desc, ok := reg.Lookup("does-not-exist")
	if ok {
		t.Fatalf("expected unknown type to report ok=false")
	}
	if desc != nil {
		t.Fatalf("expected nil descriptor for unknown type, got %+v", desc)
	}
}

func TestRegistry_LookupNormalisesTypeID(t *testing.T) {
	reg := DefaultRegistry()

	desc, ok := reg.Lookup("  Hero ")
	if !ok {
		t.Fatalf("expected lookup to normalise case and whitespace")
	}
	if desc.ID != TypeHero {
		t.Fatalf("expected hero descriptor, got %q", desc.ID)
	}
}

func TestRegistry_RejectsDuplicateRegistration(t *testing.T) {
	reg := DefaultRegistry()

	err := reg.Register(&TypeDescriptor{ID: TypeHero, Name: "Duplicate"})
	if err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestDefaultRegistry_CatalogComplete(t *testing.T) {
	reg := DefaultRegistry()

	for _, typeID := range []string{TypeHero, TypeContent, TypeFeaturedContent, TypeGallery} {
		if _, ok := reg.Lookup(typeID); !ok {
			t.Fatalf("expected built-in type %q to be registered", typeID)
		}
	}

	if got := len(reg.List()); got != 4 {
		t.Fatalf("expected 4 built-in types, got %d", got)
	}
}

func TestCloneDefaultData_IsIsolated(t *testing.T) {
	reg := DefaultRegistry()
	desc, _ := reg.Lookup(TypeHero)

	first := desc.CloneDefaultData()
	second := desc.CloneDefaultData()

	first["title"] = "mutated"
	if second["title"] == "mutated" {
		t.Fatalf("expected cloned default data maps to be independent")
	}
	if desc.DefaultData["title"] == "mutated" {
		t.Fatalf("expected descriptor default data to stay untouched")
	}
}

func TestFieldGrouping(t *testing.T) {
	cases := []struct {
		fieldType FieldType
		content   bool
	}{
		{FieldText, true},
		{FieldTextarea, true},
		{FieldImage, true},
		{FieldSelect, false},
		{FieldNumber, false},
		{FieldBoolean, false},
		{FieldColor, false},
	}

	for _, tc := range cases {
		f := FieldDefinition{Type: tc.fieldType}
		if f.IsContentField() != tc.content {
			t.Fatalf("field type %q: expected content grouping %v", tc.fieldType, tc.content)
		}
	}
}

func TestFeaturedLimitsClampFallsBackToCatalog(t *testing.T) {
	var limits FeaturedLimits

	if got := limits.Clamp(0); got != DefaultFeaturedLimit {
		t.Fatalf("Expected catalog default %d, got %d", DefaultFeaturedLimit, got)
	}
	if got := limits.Clamp(50); got != MaxFeaturedLimit {
		t.Fatalf("Expected catalog max %d, got %d", MaxFeaturedLimit, got)
	}
}

func TestFeaturedLimitsClampConfiguredBounds(t *testing.T) {
	limits := FeaturedLimits{Default: 4, Max: 6}

	if got := limits.Clamp(0); got != 4 {
		t.Fatalf("Expected configured default 4, got %d", got)
	}
	if got := limits.Clamp(5); got != 5 {
		t.Fatalf("Expected in-range limit untouched, got %d", got)
	}
	if got := limits.Clamp(9); got != 6 {
		t.Fatalf("Expected configured max 6, got %d", got)
	}

	// A max below the default cannot shrink the default.
	limits = FeaturedLimits{Default: 5, Max: 2}
	if got := limits.Clamp(0); got != 5 {
		t.Fatalf("Expected default to win over a lower max, got %d", got)
	}
}
