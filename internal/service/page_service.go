package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/repository"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/pkg/cache"
	"content-commerce-backend/pkg/utils"
	"content-commerce-backend/pkg/validator"

	"github.com/google/uuid"
)

var ErrSectionNotFound = errors.New("section not found")

type PageService struct {
	pageRepo repository.PageRepository
	registry *sections.Registry
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, registry *sections.Registry, cacheService *cache.Cache) *PageService {
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	return &PageService{
		pageRepo: pageRepo,
		registry: registry,
		cache:    cacheService,
	}
}

func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	title := validator.SanitizeString(validator.TrimSpaces(req.Title))
	if title == "" {
		return nil, errors.New("page title is required")
	}

	var slug string
	if validator.TrimSpaces(req.Slug) != "" {
		slug = utils.GenerateSlug(req.Slug)
	} else {
		slug = utils.GenerateSlug(title)
	}
	if slug == "" {
		return nil, errors.New("page slug is required")
	}

	exists, err := s.pageRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, errors.New("page with this slug already exists")
	}

	page := &models.Page{
		Title:           title,
		Slug:            slug,
		MetaDescription: validator.SanitizeString(req.MetaDescription),
		Layout:          normalizeLayout(req.Layout),
		Sections:        prepareSections(req.Sections),
		Published:       req.Published,
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.invalidateListings()
	return s.pageRepo.GetByID(page.ID)
}

func (s *PageService) Update(id uint, req models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	previousSlug := page.Slug

	if req.Title != nil {
		title := validator.SanitizeString(validator.TrimSpaces(*req.Title))
		if title == "" {
			return nil, errors.New("page title is required")
		}
		page.Title = title
	}

	if req.Slug != nil {
		slug := utils.GenerateSlug(*req.Slug)
		if slug == "" {
			return nil, errors.New("page slug is required")
		}
		if slug != page.Slug {
			exists, err := s.pageRepo.ExistsBySlugExceptID(slug, page.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check page existence: %w", err)
			}
			if exists {
				return nil, errors.New("page with this slug already exists")
			}
			page.Slug = slug
		}
	}

	if req.MetaDescription != nil {
		page.MetaDescription = validator.SanitizeString(*req.MetaDescription)
	}
	if req.Layout != nil {
		page.Layout = normalizeLayout(*req.Layout)
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	s.invalidatePage(previousSlug)
	s.invalidatePage(page.Slug)
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.pageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	s.invalidatePage(page.Slug)
	return nil
}

func (s *PageService) GetByID(id uint) (*models.Page, error) {
	return s.pageRepo.GetByID(id)
}

// GetBySlug serves the public read path and is backed by the cache.
func (s *PageService) GetBySlug(slug string) (*models.Page, error) {
	if s.cache != nil {
		var cached models.Page
		if err := s.cache.Get(pageSlugKey(slug), &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(pageSlugKey(slug), page, 1*time.Hour)
	}
	return page, nil
}

// GetBySlugAny resolves drafts too, for the admin editor.
func (s *PageService) GetBySlugAny(slug string) (*models.Page, error) {
	return s.pageRepo.GetBySlugAny(slug)
}

func (s *PageService) GetAll() ([]models.Page, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetAllAdmin() ([]models.Page, error) {
	return s.pageRepo.GetAllAdmin()
}

func (s *PageService) SetPublished(id uint, published bool) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	page.Published = published
	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	s.invalidatePage(page.Slug)
	return page, nil
}

func (s *PageService) IsSlugAvailable(slug string, excludeID *uint) (bool, error) {
	slug = utils.GenerateSlug(slug)
	if slug == "" {
		return false, nil
	}

	var (
		exists bool
		err    error
	)
	if excludeID != nil {
		exists, err = s.pageRepo.ExistsBySlugExceptID(slug, *excludeID)
	} else {
		exists, err = s.pageRepo.ExistsBySlug(slug)
	}
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func normalizeLayout(layout string) string {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return "default"
	}
	return layout
}

// prepareSections assigns ids to sections that arrive without one and
// rewrites positions to the dense 0..n-1 sequence.
func prepareSections(input []models.PageSection) models.PageSections {
	prepared := make(models.PageSections, 0, len(input))
	for i, section := range input {
		if strings.TrimSpace(section.ID) == "" {
			section.ID = uuid.New().String()
		}
		if section.Data == nil {
			section.Data = map[string]interface{}{}
		}
		section.Position = i
		prepared = append(prepared, section)
	}
	return prepared
}

func pageSlugKey(slug string) string {
	return fmt.Sprintf("page:slug:%s", slug)
}

func (s *PageService) invalidatePage(slug string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(pageSlugKey(slug))
	s.invalidateListings()
}

func (s *PageService) invalidateListings() {
	if s.cache == nil {
		return
	}
	s.cache.Delete("pages:all")
}
