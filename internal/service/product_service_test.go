package service

import (
	"testing"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"

	"gorm.io/gorm"
)

type fakeProductRepo struct {
	products []models.Product
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	product.ID = uint(len(r.products) + 1)
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(id uint) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			copied := r.products[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	return append([]models.Product{}, r.products...), nil
}

func (r *fakeProductRepo) Filter(category string, maxPrice float64) ([]models.Product, error) {
	var filtered []models.Product
	for _, product := range r.products {
		if category != "" && product.Category != category {
			continue
		}
		if maxPrice > 0 && product.CurrentPrice > maxPrice {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered, nil
}

func (r *fakeProductRepo) GetFeatured(limit int) ([]models.Product, error) {
	var featured []models.Product
	for _, product := range r.products {
		if product.Featured {
			featured = append(featured, product)
		}
		if limit > 0 && len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func catalogFixture() *fakeProductRepo {
	return &fakeProductRepo{products: []models.Product{
		{ID: 1, Title: "Organizador de Mamadeiras", Category: "cozinha",
			CategoryTags: models.StringList{"organizacao"},
			SearchTags:   models.StringList{"mamadeira", "cozinha"},
			CurrentPrice: 89.9},
		{ID: 2, Title: "Kit Higiene do Bebê", Category: "higiene-e-cuidados",
			CategoryTags: models.StringList{"higiene"},
			SearchTags:   models.StringList{"banho"},
			CurrentPrice: 149.9, Featured: true},
		{ID: 3, Title: "Tapete de Atividades", Category: "brincar-e-aprender",
			SearchTags:   models.StringList{"brinquedo", "desenvolvimento"},
			CurrentPrice: 219.0, Featured: true},
	}}
}

func TestFilterByTaxonomyMatchesAnyField(t *testing.T) {
	svc := NewProductService(catalogFixture(), nil, sections.FeaturedLimits{})

	// "organizacao" only appears in product 1's category tags.
	result, err := svc.Filter(models.ProductFilterRequest{Taxonomies: []string{"organizacao"}})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("Expected product 1, got %v", result)
	}

	// Category field also participates in the OR.
	result, err = svc.Filter(models.ProductFilterRequest{Taxonomies: []string{"cozinha"}})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("Expected product 1 via category, got %v", result)
	}
}

func TestFilterEmptySelectionMatchesAll(t *testing.T) {
	svc := NewProductService(catalogFixture(), nil, sections.FeaturedLimits{})

	result, err := svc.Filter(models.ProductFilterRequest{})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("Expected all products, got %d", len(result))
	}
}

func TestFilterComposesDimensions(t *testing.T) {
	svc := NewProductService(catalogFixture(), nil, sections.FeaturedLimits{})

	result, err := svc.Filter(models.ProductFilterRequest{
		Taxonomies: []string{"higiene", "brinquedo"},
		MaxPrice:   160,
	})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	// Product 3 matches the taxonomy but exceeds the price cap.
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("Expected only product 2, got %v", result)
	}
}

func TestFilterSearchSpansTitleAndTags(t *testing.T) {
	svc := NewProductService(catalogFixture(), nil, sections.FeaturedLimits{})

	result, err := svc.Filter(models.ProductFilterRequest{Search: "BANHO"})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("Expected search tag match, got %v", result)
	}

	result, err = svc.Filter(models.ProductFilterRequest{Search: "tapete"})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 1 || result[0].ID != 3 {
		t.Fatalf("Expected title match, got %v", result)
	}
}

func TestGetFeaturedClampsLimit(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil, sections.FeaturedLimits{})

	result, err := svc.GetFeatured(0)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 featured products, got %d", len(result))
	}

	result, err = svc.GetFeatured(1)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected limit applied, got %d", len(result))
	}
}

func TestGetFeaturedHonorsConfiguredLimits(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil, sections.FeaturedLimits{Default: 1, Max: 2})

	result, err := svc.GetFeatured(0)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected configured default of 1, got %d", len(result))
	}

	result, err = svc.GetFeatured(50)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected configured max of 2, got %d", len(result))
	}
}
