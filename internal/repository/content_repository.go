package repository

import (
	"content-commerce-backend/internal/models"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *models.Content) error
	Update(content *models.Content) error
	Delete(id uint) error
	GetByID(id uint) (*models.Content, error)
	GetByType(contentType string) ([]models.Content, error)
	GetFeaturedByType(contentType string, limit int) ([]models.Content, error)
	IncrementViews(id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) Update(content *models.Content) error {
	return r.db.Save(content).Error
}

func (r *contentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Content{}, id).Error
}

func (r *contentRepository) GetByID(id uint) (*models.Content, error) {
	var content models.Content
	if err := r.db.First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) GetByType(contentType string) ([]models.Content, error) {
	var items []models.Content
	if err := r.db.Where("type = ?", contentType).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepository) GetFeaturedByType(contentType string, limit int) ([]models.Content, error) {
	var items []models.Content
	query := r.db.Where("type = ? AND featured = ?", contentType, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
