package render

import (
	"sort"
	"strings"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"
)

// Engine renders whole pages by dispatching each section to its renderer.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine backed by the given registry. A nil registry
// gets the default renderer set.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Engine{registry: registry}
}

// DefaultRegistry returns a registry with every built-in renderer installed.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(sections.TypeHero, renderHero)
	reg.MustRegister(sections.TypeContent, renderContent)
	reg.MustRegister(sections.TypeFeaturedContent, renderFeaturedContent)
	reg.MustRegister(sections.TypeGallery, renderGallery)
	return reg
}

// RenderSection renders a single section. Unrecognized types produce a
// placeholder block instead of failing the page.
func (e *Engine) RenderSection(rc *Context, section models.PageSection) string {
	if e == nil || rc == nil {
		return ""
	}

	if renderer, ok := e.registry.Get(section.Type); ok {
		return renderer(rc, section)
	}
	return renderUnknown(rc, section)
}

// RenderPage renders every section of the page in position order and joins
// the resulting blocks.
func (e *Engine) RenderPage(rc *Context, page *models.Page) string {
	if e == nil || rc == nil || page == nil {
		return ""
	}

	ordered := make([]models.PageSection, len(page.Sections))
	copy(ordered, page.Sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	var sb strings.Builder
	for i := range ordered {
		sb.WriteString(e.RenderSection(rc, ordered[i]))
	}
	return sb.String()
}

// RenderDocument wraps the rendered sections in a complete HTML document.
// The page's own metadata wins; the site metadata fills the gaps.
func (e *Engine) RenderDocument(rc *Context, page *models.Page) string {
	if e == nil || rc == nil || page == nil {
		return ""
	}

	title := strings.TrimSpace(page.Title)
	switch {
	case title == "":
		title = rc.Site.Name
	case rc.Site.Name != "":
		title = title + " | " + rc.Site.Name
	}

	description := strings.TrimSpace(page.MetaDescription)
	if description == "" {
		description = rc.Site.Description
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"pt-BR\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	sb.WriteString(`<title>` + escape(title) + "</title>\n")
	if description != "" {
		sb.WriteString(`<meta name="description" content="` + escapeAttr(description) + "\">\n")
	}
	if rc.Site.URL != "" {
		canonical := strings.TrimRight(rc.Site.URL, "/") + "/" + page.Slug
		sb.WriteString(`<link rel="canonical" href="` + escapeAttr(canonical) + "\">\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(e.RenderPage(rc, page))
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

func renderUnknown(rc *Context, section models.PageSection) string {
	blockClass := classes(rc.Prefix, "section-unknown")

	var sb strings.Builder
	sb.WriteString(`<div class="` + blockClass + `">`)
	sb.WriteString(`<p>Tipo de seção desconhecido: ` + escape(section.Type) + `</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}
