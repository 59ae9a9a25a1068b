package handlers

import (
	"net/http"

	"content-commerce-backend/internal/render"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/internal/service"
	"content-commerce-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// RenderHandler serves server-rendered page HTML.
type RenderHandler struct {
	pageService *service.PageService
	engine      *render.Engine
	source      render.ContentSource
	site        render.Site
	limits      sections.FeaturedLimits
}

func NewRenderHandler(pageService *service.PageService, engine *render.Engine, source render.ContentSource, site render.Site, limits sections.FeaturedLimits) *RenderHandler {
	return &RenderHandler{
		pageService: pageService,
		engine:      engine,
		source:      source,
		site:        site,
		limits:      limits,
	}
}

// RenderPage serves the published page as a full HTML document.
func (h *RenderHandler) RenderPage(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	rc := &render.Context{
		Ctx:      c.Request.Context(),
		Prefix:   "page",
		Sanitize: validator.SanitizeHTML,
		Content:  h.source,
		Limits:   h.limits,
		Site:     h.site,
	}

	html := h.engine.RenderDocument(rc, page)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PreviewPage renders the page for the builder's live preview, including
// drafts and the editing chrome.
func (h *RenderHandler) PreviewPage(c *gin.Context) {
	page, err := h.pageService.GetBySlugAny(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	rc := &render.Context{
		Ctx:      c.Request.Context(),
		Editing:  true,
		Prefix:   "page",
		Sanitize: validator.SanitizeHTML,
		Content:  h.source,
		Limits:   h.limits,
		Site:     h.site,
	}

	html := h.engine.RenderPage(rc, page)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
