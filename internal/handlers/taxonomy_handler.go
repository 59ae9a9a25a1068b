package handlers

import (
	"net/http"
	"strconv"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomyService *service.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// GetTree serves the styled category hierarchy consumed by filter sidebars.
func (h *TaxonomyHandler) GetTree(c *gin.Context) {
	tree, err := h.taxonomyService.GetTree()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load taxonomies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxonomies": tree})
}

func (h *TaxonomyHandler) Create(c *gin.Context) {
	var record models.Taxonomy
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.taxonomyService.Create(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"taxonomy": record})
}

func (h *TaxonomyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid taxonomy id"})
		return
	}

	if err := h.taxonomyService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete taxonomy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "taxonomy deleted successfully"})
}
