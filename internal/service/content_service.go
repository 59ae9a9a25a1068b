package service

import (
	"fmt"
	"strings"
	"time"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/repository"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/pkg/cache"
)

type ContentService struct {
	contentRepo repository.ContentRepository
	cache       *cache.Cache
	limits      sections.FeaturedLimits
}

func NewContentService(contentRepo repository.ContentRepository, cacheService *cache.Cache, limits sections.FeaturedLimits) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		cache:       cacheService,
		limits:      limits,
	}
}

func normalizeContentType(contentType string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case models.ContentTypeBlog:
		return models.ContentTypeBlog, nil
	case models.ContentTypeVideos:
		return models.ContentTypeVideos, nil
	default:
		return "", fmt.Errorf("unknown content type: %s", contentType)
	}
}

func (s *ContentService) GetByType(contentType string) ([]models.Content, error) {
	normalized, err := normalizeContentType(contentType)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.GetByType(normalized)
}

// GetFeatured returns the highlighted items of one content type, clamped to
// the allowed limit range.
func (s *ContentService) GetFeatured(contentType string, limit int) ([]models.Content, error) {
	normalized, err := normalizeContentType(contentType)
	if err != nil {
		return nil, err
	}

	limit = s.limits.Clamp(limit)

	key := fmt.Sprintf("content:featured:%s:%d", normalized, limit)
	if s.cache != nil {
		var cached []models.Content
		if err := s.cache.Get(key, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.contentRepo.GetFeaturedByType(normalized, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, items, 10*time.Minute)
	}
	return items, nil
}

func (s *ContentService) Create(content *models.Content) error {
	normalized, err := normalizeContentType(content.Type)
	if err != nil {
		return err
	}
	content.Type = normalized

	if err := s.contentRepo.Create(content); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ContentService) Update(content *models.Content) error {
	normalized, err := normalizeContentType(content.Type)
	if err != nil {
		return err
	}
	content.Type = normalized

	if err := s.contentRepo.Update(content); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ContentService) Delete(id uint) error {
	if err := s.contentRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ContentService) RegisterView(id uint) error {
	return s.contentRepo.IncrementViews(id)
}

func (s *ContentService) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.DeletePattern("content:*")
}
