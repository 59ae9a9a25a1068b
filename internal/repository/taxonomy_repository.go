package repository

import (
	"content-commerce-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaxonomyRepository interface {
	Create(record *models.Taxonomy) error
	Upsert(record *models.Taxonomy) error
	Delete(id uint) error
	GetAll() ([]models.Taxonomy, error)
	GetBySlug(slug string) (*models.Taxonomy, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) Create(record *models.Taxonomy) error {
	return r.db.Create(record).Error
}

// Upsert keeps seeding idempotent: re-running the seed updates names,
// parents and positions in place.
func (r *taxonomyRepository) Upsert(record *models.Taxonomy) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "parent_slug", "position"}),
	}).Create(record).Error
}

func (r *taxonomyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Taxonomy{}, id).Error
}

func (r *taxonomyRepository) GetAll() ([]models.Taxonomy, error) {
	var records []models.Taxonomy
	if err := r.db.Order("position ASC, slug ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *taxonomyRepository) GetBySlug(slug string) (*models.Taxonomy, error) {
	var record models.Taxonomy
	if err := r.db.Where("slug = ?", slug).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
