package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

func (h *PageHandler) Update(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.Update(id, req)
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	if err := h.pageService.Delete(id); err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page deleted successfully"})
}

func (h *PageHandler) GetByID(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// GetBySlug serves the public composed page document.
func (h *PageHandler) GetBySlug(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) GetAll(c *gin.Context) {
	pages, err := h.pageService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) GetAllAdmin(c *gin.Context) {
	pages, err := h.pageService.GetAllAdmin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) Publish(c *gin.Context) {
	h.setPublished(c, true)
}

func (h *PageHandler) Unpublish(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *PageHandler) setPublished(c *gin.Context, published bool) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.SetPublished(id, published)
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func pageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return 0, false
	}
	return uint(id), true
}

func respondPageError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
