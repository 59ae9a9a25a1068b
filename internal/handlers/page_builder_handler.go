package handlers

import (
	"errors"
	"net/http"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PageBuilderHandler struct {
	pageService *service.PageService
}

func NewPageBuilderHandler(pageService *service.PageService) *PageBuilderHandler {
	return &PageBuilderHandler{pageService: pageService}
}

// GetConfig exposes the section type catalog and templates to the builder UI.
func (h *PageBuilderHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.pageService.GetPageBuilderConfig())
}

func (h *PageBuilderHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.pageService.GetPageTemplates()})
}

func (h *PageBuilderHandler) AddSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.AddSection(id, req)
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageBuilderHandler) UpdateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.UpdateSection(id, c.Param("sectionId"), req)
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageBuilderHandler) DeleteSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.DeleteSection(id, c.Param("sectionId"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageBuilderHandler) ReorderSections(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.ReorderSections(id, req.SectionIDs)
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageBuilderHandler) DuplicateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.DuplicateSection(id, c.Param("sectionId"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageBuilderHandler) DuplicatePage(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.DuplicatePage(id)
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

func (h *PageBuilderHandler) ApplyTemplate(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.ApplyTemplate(id, req.TemplateID)
	if err != nil {
		respondBuilderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func respondBuilderError(c *gin.Context, err error) {
	var validationErr *service.SectionValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "section data is invalid",
			"fields": validationErr.Fields,
		})
		return
	}
	if errors.Is(err, service.ErrSectionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	respondPageError(c, err)
}
