package sections

// FieldType enumerates the editable field kinds a section type can declare.
// Persisted descriptors may carry values outside this set; consumers must
// treat those as unconstrained strings rather than failing.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldImage    FieldType = "image"
	FieldColor    FieldType = "color"
)

// FieldValidation holds the optional constraints of a field definition.
// Min and Max bound string length for string-like fields and the numeric
// value for number fields.
type FieldValidation struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// FieldDefinition describes one editable property of a section's data map.
// Name is the binding key into the data map.
type FieldDefinition struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        FieldType        `json:"type"`
	Placeholder string           `json:"placeholder,omitempty"`
	Options     []string         `json:"options,omitempty"`
	Required    bool             `json:"required"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}

// IsContentField reports whether a field belongs to the "content" tab of the
// edit form. Everything else lands under "settings". This is a display
// grouping convention only.
func (f FieldDefinition) IsContentField() bool {
	switch f.Type {
	case FieldText, FieldTextarea, FieldImage:
		return true
	default:
		return false
	}
}

func floatPtr(v float64) *float64 { return &v }
