package models

// CreatePageRequest creates a new page document.
type CreatePageRequest struct {
	Title           string        `json:"title" binding:"required,no_html"`
	Slug            string        `json:"slug" binding:"omitempty,slug"`
	MetaDescription string        `json:"meta_description"`
	Layout          string        `json:"layout"`
	Sections        []PageSection `json:"sections"`
	Published       bool          `json:"is_published"`
}

// UpdatePageRequest mutates page metadata; section mutations go through the
// dedicated section operations.
type UpdatePageRequest struct {
	Title           *string `json:"title" binding:"omitempty,no_html"`
	Slug            *string `json:"slug" binding:"omitempty,slug"`
	MetaDescription *string `json:"meta_description"`
	Layout          *string `json:"layout"`
	Published       *bool   `json:"is_published"`
}

// AddSectionRequest appends a new section of a registered type.
type AddSectionRequest struct {
	Type string `json:"type" binding:"required"`
	Name string `json:"name"`
}

// UpdateSectionRequest replaces a section's data map after validation
// against the type's derived schema.
type UpdateSectionRequest struct {
	Name *string                `json:"name,omitempty"`
	Data map[string]interface{} `json:"data" binding:"required"`
}

// ReorderSectionsRequest carries the full id permutation produced by the
// drag interaction; the visual order is the source of truth.
type ReorderSectionsRequest struct {
	SectionIDs []string `json:"section_ids" binding:"required"`
}

// ApplyTemplateRequest replaces a page's sections with a template's.
type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// ValidateSectionRequest dry-runs a section edit without persisting.
type ValidateSectionRequest struct {
	Type string                 `json:"type" binding:"required"`
	Data map[string]interface{} `json:"data"`
}

// PageTemplate is a predefined page layout.
type PageTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sections    []PageSection `json:"sections"`
}

// PageBuilderConfig feeds the builder UI: available section types with their
// editable fields and the predefined page templates.
type PageBuilderConfig struct {
	SectionTypes []SectionTypeConfig `json:"section_types"`
	Templates    []PageTemplate      `json:"templates"`
}

// SectionTypeConfig describes one section type for the builder UI, with its
// fields already partitioned into the content/settings edit tabs.
type SectionTypeConfig struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	DefaultData   map[string]interface{} `json:"default_data"`
	ContentFields []string               `json:"content_fields"`
	SettingFields []string               `json:"setting_fields"`
}

// ProductFilterRequest is the composed catalog filter. All populated
// dimensions must pass (AND); the taxonomy slugs are OR'ed internally.
type ProductFilterRequest struct {
	Taxonomies []string `form:"-" json:"taxonomies"`
	Search     string   `form:"search" json:"search"`
	MaxPrice   float64  `form:"maxPrice" json:"max_price"`
	Category   string   `form:"category" json:"category"`
}
