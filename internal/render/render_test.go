package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"
)

type fakeContentSource struct {
	products []models.Product
	contents []models.Content
	err      error

	lastLimit int
	lastType  string
}

func (f *fakeContentSource) FeaturedProducts(_ context.Context, limit int) ([]models.Product, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.products) {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeContentSource) FeaturedContent(_ context.Context, contentType string, limit int) ([]models.Content, error) {
	f.lastType = contentType
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.contents) {
		return f.contents[:limit], nil
	}
	return f.contents, nil
}

func testContext(source ContentSource) *Context {
	return &Context{
		Ctx:      context.Background(),
		Prefix:   "page",
		Sanitize: func(s string) string { return s },
		Content:  source,
	}
}

func TestRenderUnknownTypeProducesPlaceholder(t *testing.T) {
	engine := NewEngine(nil)
	rc := testContext(nil)

	html := engine.RenderSection(rc, models.PageSection{ID: "s1", Type: "carousel"})
	if !strings.Contains(html, "Tipo de seção desconhecido") {
		t.Fatalf("Expected placeholder for unknown type, got %q", html)
	}
	if !strings.Contains(html, "carousel") {
		t.Fatalf("Expected placeholder to name the type, got %q", html)
	}
}

func TestRenderPageOrdersByPosition(t *testing.T) {
	engine := NewEngine(nil)
	rc := testContext(nil)

	page := &models.Page{
		Sections: models.PageSections{
			{ID: "b", Type: sections.TypeContent, Position: 1, Data: map[string]interface{}{"title": "Segundo"}},
			{ID: "a", Type: sections.TypeHero, Position: 0, Data: map[string]interface{}{"title": "Primeiro"}},
		},
	}

	html := engine.RenderPage(rc, page)
	first := strings.Index(html, "Primeiro")
	second := strings.Index(html, "Segundo")
	if first == -1 || second == -1 {
		t.Fatalf("Expected both sections rendered, got %q", html)
	}
	if first > second {
		t.Fatalf("Expected position order, hero rendered after content")
	}
}

func TestRenderHeroFallbackTitle(t *testing.T) {
	rc := testContext(nil)
	html := renderHero(rc, models.PageSection{Type: sections.TypeHero, Data: map[string]interface{}{}})
	if !strings.Contains(html, "Título Principal") {
		t.Fatalf("Expected fallback title, got %q", html)
	}
}

func TestRenderHeroEscapesValues(t *testing.T) {
	rc := testContext(nil)
	html := renderHero(rc, models.PageSection{
		Type: sections.TypeHero,
		Data: map[string]interface{}{"title": `<script>alert("x")</script>`},
	})
	if strings.Contains(html, "<script>") {
		t.Fatalf("Expected escaped title, got %q", html)
	}
}

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"explicit variant wins", map[string]interface{}{"variant": "mission", "title": "Qualquer"}, sections.VariantMission},
		{"unknown variant falls back", map[string]interface{}{"variant": "fancy"}, sections.VariantGeneric},
		{"legacy mission title", map[string]interface{}{"title": "Nossa Missão"}, sections.VariantMission},
		{"legacy values title", map[string]interface{}{"title": "Nossos Valores"}, sections.VariantValues},
		{"legacy welcome title", map[string]interface{}{"title": "Você Não Está Sozinha"}, sections.VariantWelcome},
		{"legacy self care title", map[string]interface{}{"title": "Tempo para Você"}, sections.VariantSelfCare},
		{"legacy support title", map[string]interface{}{"title": "Como Te Auxiliamos"}, sections.VariantSupport},
		{"plain title stays generic", map[string]interface{}{"title": "Sobre Nós"}, sections.VariantGeneric},
		{"generic variant still checks title", map[string]interface{}{"variant": "generic", "title": "Nossos Valores"}, sections.VariantValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveVariant(tt.data); got != tt.want {
				t.Fatalf("resolveVariant() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderContentVariantClass(t *testing.T) {
	rc := testContext(nil)
	html := renderContent(rc, models.PageSection{
		Type: sections.TypeContent,
		Data: map[string]interface{}{"variant": "values", "content": "<p>ok</p>"},
	})
	if !strings.Contains(html, "content-section--values") {
		t.Fatalf("Expected variant class in output, got %q", html)
	}
}

func TestRenderContentSanitizes(t *testing.T) {
	rc := testContext(nil)
	rc.Sanitize = func(string) string { return "CLEANED" }

	html := renderContent(rc, models.PageSection{
		Type: sections.TypeContent,
		Data: map[string]interface{}{"content": "<script>bad</script>"},
	})
	if !strings.Contains(html, "CLEANED") || strings.Contains(html, "bad") {
		t.Fatalf("Expected sanitized body, got %q", html)
	}
}

func TestRenderFeaturedDefaultLimit(t *testing.T) {
	source := &fakeContentSource{}
	rc := testContext(source)

	renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "blog"},
	})
	if source.lastLimit != sections.DefaultFeaturedLimit {
		t.Fatalf("Expected default limit %d, got %d", sections.DefaultFeaturedLimit, source.lastLimit)
	}
}

func TestRenderFeaturedClampsLimit(t *testing.T) {
	source := &fakeContentSource{}
	rc := testContext(source)

	renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "blog", "limit": float64(50)},
	})
	if source.lastLimit != sections.MaxFeaturedLimit {
		t.Fatalf("Expected clamped limit %d, got %d", sections.MaxFeaturedLimit, source.lastLimit)
	}
}

func TestRenderFeaturedProducts(t *testing.T) {
	source := &fakeContentSource{products: []models.Product{
		{Title: "Babá Eletrônica", CurrentPrice: 249.9, AffiliateLink: "https://example.com/p1"},
	}}
	rc := testContext(source)

	html := renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "products"},
	})
	if !strings.Contains(html, "Babá Eletrônica") {
		t.Fatalf("Expected product title, got %q", html)
	}
	if !strings.Contains(html, "R$ 249,90") {
		t.Fatalf("Expected formatted price, got %q", html)
	}
	if !strings.Contains(html, "Ver Oferta") {
		t.Fatalf("Expected affiliate link, got %q", html)
	}
}

func TestRenderFeaturedEmptyState(t *testing.T) {
	source := &fakeContentSource{}
	rc := testContext(source)

	html := renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "blog"},
	})
	if !strings.Contains(html, "Nenhum conteúdo encontrado") {
		t.Fatalf("Expected empty state, got %q", html)
	}
}

func TestRenderFeaturedErrorState(t *testing.T) {
	source := &fakeContentSource{err: errors.New("db down")}
	rc := testContext(source)

	html := renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "products"},
	})
	if !strings.Contains(html, "Não foi possível carregar") {
		t.Fatalf("Expected degraded message, got %q", html)
	}
}

func TestRenderGallerySplitsLines(t *testing.T) {
	rc := testContext(nil)
	html := renderGallery(rc, models.PageSection{
		Type: sections.TypeGallery,
		Data: map[string]interface{}{
			"images":  "https://a.jpg\n\n  https://b.jpg  \n",
			"columns": float64(4),
		},
	})
	if got := strings.Count(html, "<img"); got != 2 {
		t.Fatalf("Expected 2 images, got %d in %q", got, html)
	}
	if !strings.Contains(html, "gallery-grid--cols-4") {
		t.Fatalf("Expected column class, got %q", html)
	}
	if !strings.Contains(html, "onerror") {
		t.Fatalf("Expected per-image fallback, got %q", html)
	}
}

func TestRenderGalleryEmpty(t *testing.T) {
	rc := testContext(nil)
	html := renderGallery(rc, models.PageSection{
		Type: sections.TypeGallery,
		Data: map[string]interface{}{"images": "   \n  "},
	})
	if !strings.Contains(html, "Nenhuma imagem adicionada") {
		t.Fatalf("Expected empty state, got %q", html)
	}
}

func TestRenderFeaturedHonorsConfiguredLimits(t *testing.T) {
	source := &fakeContentSource{}
	rc := testContext(source)
	rc.Limits = sections.FeaturedLimits{Default: 5, Max: 6}

	renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "blog"},
	})
	if source.lastLimit != 5 {
		t.Fatalf("Expected configured default of 5, got %d", source.lastLimit)
	}

	renderFeaturedContent(rc, models.PageSection{
		Type: sections.TypeFeaturedContent,
		Data: map[string]interface{}{"contentType": "blog", "limit": float64(50)},
	})
	if source.lastLimit != 6 {
		t.Fatalf("Expected configured max of 6, got %d", source.lastLimit)
	}
}

func TestRenderDocumentHead(t *testing.T) {
	engine := NewEngine(nil)
	rc := testContext(nil)
	rc.Site = Site{
		Name:        "Mãe Prática",
		Description: "Conteúdo e produtos para o dia a dia.",
		URL:         "https://maepratica.example/",
	}

	page := &models.Page{
		Slug:  "sobre",
		Title: "Sobre Nós",
		Sections: models.PageSections{
			{ID: "s1", Type: sections.TypeHero, Data: map[string]interface{}{"title": "Olá"}},
		},
	}

	html := engine.RenderDocument(rc, page)
	if !strings.Contains(html, "<title>Sobre Nós | Mãe Prática</title>") {
		t.Fatalf("Expected page and site name in title, got %q", html)
	}
	if !strings.Contains(html, `content="Conteúdo e produtos para o dia a dia."`) {
		t.Fatalf("Expected site description fallback, got %q", html)
	}
	if !strings.Contains(html, `href="https://maepratica.example/sobre"`) {
		t.Fatalf("Expected canonical link, got %q", html)
	}
	if !strings.Contains(html, "Olá") {
		t.Fatalf("Expected section body inside document, got %q", html)
	}
}

func TestRenderDocumentPrefersPageDescription(t *testing.T) {
	engine := NewEngine(nil)
	rc := testContext(nil)
	rc.Site = Site{Name: "Mãe Prática", Description: "Descrição do site."}

	page := &models.Page{
		Slug:            "sobre",
		Title:           "Sobre Nós",
		MetaDescription: "Quem somos e o que fazemos.",
	}

	html := engine.RenderDocument(rc, page)
	if !strings.Contains(html, `content="Quem somos e o que fazemos."`) {
		t.Fatalf("Expected page description to win, got %q", html)
	}
	if strings.Contains(html, "Descrição do site.") {
		t.Fatalf("Expected site description to be suppressed, got %q", html)
	}
	if strings.Contains(html, "canonical") {
		t.Fatalf("Expected no canonical link without a site URL, got %q", html)
	}
}
