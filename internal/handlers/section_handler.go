package handlers

import (
	"errors"
	"net/http"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SectionHandler serves section-type introspection and the stateless
// validation endpoint used by the editor while the user types.
type SectionHandler struct {
	pageService *service.PageService
}

func NewSectionHandler(pageService *service.PageService) *SectionHandler {
	return &SectionHandler{pageService: pageService}
}

func (h *SectionHandler) ListTypes(c *gin.Context) {
	config := h.pageService.GetPageBuilderConfig()
	c.JSON(http.StatusOK, gin.H{"section_types": config.SectionTypes})
}

func (h *SectionHandler) Validate(c *gin.Context) {
	var req models.ValidateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cleaned, err := h.pageService.ValidateSection(req)
	if err != nil {
		var validationErr *service.SectionValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusOK, gin.H{
				"valid":  false,
				"fields": validationErr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "data": cleaned})
}
