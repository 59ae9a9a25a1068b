package sections

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"content-commerce-backend/internal/models"
)

// TypeDescriptor is the registry entry for one section type. Descriptors are
// immutable after registration; DefaultData is deep-copied on every read so
// a registered template can never leak shared state into page documents.
type TypeDescriptor struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	DefaultData map[string]interface{} `json:"default_data"`
	Fields      []FieldDefinition      `json:"fields"`
}

// CloneDefaultData returns an isolated copy of the descriptor's default data.
func (d *TypeDescriptor) CloneDefaultData() map[string]interface{} {
	if d == nil {
		return map[string]interface{}{}
	}
	return models.CloneDataMap(d.DefaultData)
}

// Registry stores section type descriptors keyed by normalised type id.
// It is read-only after process start and safe for concurrent readers.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*TypeDescriptor
}

// NewRegistry creates an empty section type registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*TypeDescriptor)}
}

// Register adds a descriptor. It returns an error when the input is invalid
// or when the type id is already taken.
func (r *Registry) Register(desc *TypeDescriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	id := normaliseTypeID(desc.ID)
	if id == "" {
		return fmt.Errorf("section type id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*TypeDescriptor)
	}
	if _, exists := r.descriptors[id]; exists {
		return fmt.Errorf("section type %s already registered", id)
	}

	copied := *desc
	copied.ID = id
	r.descriptors[id] = &copied
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
// Only used while assembling the built-in catalog at startup.
func (r *Registry) MustRegister(desc *TypeDescriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Lookup retrieves a descriptor for the provided type id. Unknown ids report
// ok=false; callers render an "unrecognized section type" placeholder rather
// than failing the whole page.
func (r *Registry) Lookup(typeID string) (*TypeDescriptor, bool) {
	if r == nil {
		return nil, false
	}

	id := normaliseTypeID(typeID)
	if id == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[id]
	return desc, ok
}

// List returns all descriptors sorted by category, then id, for stable
// builder UI output.
func (r *Registry) List() []*TypeDescriptor {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*TypeDescriptor, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		result = append(result, desc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Clone creates a copy of the registry with the same descriptors.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for id, desc := range r.descriptors {
		cloned.descriptors[id] = desc
	}
	return cloned
}

func normaliseTypeID(id string) string {
	return strings.TrimSpace(strings.ToLower(id))
}
