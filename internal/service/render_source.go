package service

import (
	"context"

	"content-commerce-backend/internal/models"
)

// RenderSource adapts the catalog services to the renderer's query boundary.
type RenderSource struct {
	products *ProductService
	content  *ContentService
}

func NewRenderSource(products *ProductService, content *ContentService) *RenderSource {
	return &RenderSource{products: products, content: content}
}

func (s *RenderSource) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.products.GetFeatured(limit)
}

func (s *RenderSource) FeaturedContent(ctx context.Context, contentType string, limit int) ([]models.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.content.GetFeatured(contentType, limit)
}
