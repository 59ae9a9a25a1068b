package service

import (
	"time"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/repository"
	"content-commerce-backend/internal/taxonomy"
	"content-commerce-backend/pkg/cache"
)

const taxonomyTreeKey = "taxonomies:tree"

type TaxonomyService struct {
	taxonomyRepo repository.TaxonomyRepository
	cache        *cache.Cache
}

func NewTaxonomyService(taxonomyRepo repository.TaxonomyRepository, cacheService *cache.Cache) *TaxonomyService {
	return &TaxonomyService{
		taxonomyRepo: taxonomyRepo,
		cache:        cacheService,
	}
}

// GetTree assembles the two-level category hierarchy with display styles
// attached to the top-level nodes.
func (s *TaxonomyService) GetTree() ([]taxonomy.Node, error) {
	if s.cache != nil {
		var cached []taxonomy.Node
		if err := s.cache.Get(taxonomyTreeKey, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.taxonomyRepo.GetAll()
	if err != nil {
		return nil, err
	}

	tree := taxonomy.BuildHierarchy(records)

	if s.cache != nil {
		s.cache.Set(taxonomyTreeKey, tree, 30*time.Minute)
	}
	return tree, nil
}

func (s *TaxonomyService) Create(record *models.Taxonomy) error {
	if err := s.taxonomyRepo.Create(record); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *TaxonomyService) Upsert(record *models.Taxonomy) error {
	if err := s.taxonomyRepo.Upsert(record); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *TaxonomyService) Delete(id uint) error {
	if err := s.taxonomyRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *TaxonomyService) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.Delete(taxonomyTreeKey)
}
