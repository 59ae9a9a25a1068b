// Package render turns page sections into HTML blocks. Dispatch is keyed by
// the section's type string with a mandatory placeholder arm, so documents
// persisted before a type existed (or after one was removed) still render.
package render

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"
)

// Site identifies the publishing site in rendered document heads.
type Site struct {
	Name        string
	Description string
	URL         string
}

// ContentSource is the injected query boundary used by data-bearing
// sections. Implementations must honor ctx cancellation: a render abandoned
// mid-fetch (client gone, page editor closed) stops cleanly.
type ContentSource interface {
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	FeaturedContent(ctx context.Context, contentType string, limit int) ([]models.Content, error)
}

// Context carries everything a renderer may need. Prefix namespaces the
// generated CSS classes.
type Context struct {
	Ctx      context.Context
	Editing  bool
	Prefix   string
	Sanitize func(string) string
	Content  ContentSource
	Limits   sections.FeaturedLimits
	Site     Site
}

// SanitizeHTML cleans potentially unsafe markup before rendering.
func (c *Context) SanitizeHTML(input string) string {
	if c == nil || c.Sanitize == nil {
		return input
	}
	return c.Sanitize(input)
}

// Renderer produces the HTML block for one section.
type Renderer func(rc *Context, section models.PageSection) string

// Registry stores the mapping between section types and their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register associates a renderer with a normalised section type.
func (r *Registry) Register(sectionType string, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

// MustRegister registers the renderer and panics if registration fails.
func (r *Registry) MustRegister(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}
