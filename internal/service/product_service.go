package service

import (
	"strconv"
	"strings"
	"time"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/repository"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/internal/taxonomy"
	"content-commerce-backend/pkg/cache"
)

type ProductService struct {
	productRepo repository.ProductRepository
	cache       *cache.Cache
	limits      sections.FeaturedLimits
}

func NewProductService(productRepo repository.ProductRepository, cacheService *cache.Cache, limits sections.FeaturedLimits) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cacheService,
		limits:      limits,
	}
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *ProductService) Create(product *models.Product) error {
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ProductService) Update(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ProductService) Delete(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Filter applies the composed catalog filter. Category and price are pushed
// to the database; the taxonomy selection and text search run over the
// result because both reach into jsonb tag arrays.
func (s *ProductService) Filter(req models.ProductFilterRequest) ([]models.Product, error) {
	products, err := s.productRepo.Filter(strings.TrimSpace(req.Category), req.MaxPrice)
	if err != nil {
		return nil, err
	}

	selection := taxonomy.NewSelection(req.Taxonomies...)
	query := strings.ToLower(strings.TrimSpace(req.Search))

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if !taxonomy.Matches(product, selection) {
			continue
		}
		if query != "" && !productMatchesQuery(product, query) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered, nil
}

// GetFeatured returns the highlighted products, clamped to the allowed
// limit range.
func (s *ProductService) GetFeatured(limit int) ([]models.Product, error) {
	limit = s.limits.Clamp(limit)

	key := featuredProductsKey(limit)
	if s.cache != nil {
		var cached []models.Product
		if err := s.cache.Get(key, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.GetFeatured(limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, products, 10*time.Minute)
	}
	return products, nil
}

func productMatchesQuery(product models.Product, query string) bool {
	if strings.Contains(strings.ToLower(product.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), query) {
		return true
	}
	for _, tag := range product.SearchTags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func featuredProductsKey(limit int) string {
	return "products:featured:" + strconv.Itoa(limit)
}

func (s *ProductService) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.DeletePattern("products:*")
}
