package repository

import (
	"content-commerce-backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Filter(category string, maxPrice float64) ([]models.Product, error)
	GetFeatured(limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("title ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Filter pushes the scalar predicates down to SQL. Tag matching happens in
// the service because tags live in jsonb arrays.
func (r *productRepository) Filter(category string, maxPrice float64) ([]models.Product, error) {
	query := r.db.Order("title ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if maxPrice > 0 {
		query = query.Where("current_price <= ?", maxPrice)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetFeatured(limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("featured = ?", true).Order("rating DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
