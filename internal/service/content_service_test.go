package service

import (
	"testing"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/sections"

	"gorm.io/gorm"
)

type fakeContentRepo struct {
	items []models.Content
}

func (r *fakeContentRepo) Create(content *models.Content) error {
	content.ID = uint(len(r.items) + 1)
	r.items = append(r.items, *content)
	return nil
}

func (r *fakeContentRepo) Update(content *models.Content) error {
	for i := range r.items {
		if r.items[i].ID == content.ID {
			r.items[i] = *content
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) Delete(id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeContentRepo) GetByID(id uint) (*models.Content, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) GetByType(contentType string) ([]models.Content, error) {
	var matched []models.Content
	for _, item := range r.items {
		if item.Type == contentType {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *fakeContentRepo) GetFeaturedByType(contentType string, limit int) ([]models.Content, error) {
	var matched []models.Content
	for _, item := range r.items {
		if item.Type == contentType && item.Featured {
			matched = append(matched, item)
		}
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func (r *fakeContentRepo) IncrementViews(id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Views++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func contentFixture() *fakeContentRepo {
	return &fakeContentRepo{items: []models.Content{
		{ID: 1, Title: "Rotina de Sono", Type: models.ContentTypeBlog, Featured: true},
		{ID: 2, Title: "Primeiros Passos", Type: models.ContentTypeBlog, Featured: true},
		{ID: 3, Title: "Amamentação na Prática", Type: models.ContentTypeVideos, Featured: true, YoutubeID: "abc123"},
		{ID: 4, Title: "Rascunho", Type: models.ContentTypeBlog},
	}}
}

func TestGetFeaturedFiltersByType(t *testing.T) {
	svc := NewContentService(contentFixture(), nil, sections.FeaturedLimits{})

	blog, err := svc.GetFeatured(models.ContentTypeBlog, 5)
	if err != nil {
		t.Fatalf("Failed to get featured blog: %v", err)
	}
	if len(blog) != 2 {
		t.Fatalf("Expected 2 featured blog items, got %d", len(blog))
	}

	videos, err := svc.GetFeatured(models.ContentTypeVideos, 5)
	if err != nil {
		t.Fatalf("Failed to get featured videos: %v", err)
	}
	if len(videos) != 1 || videos[0].YoutubeID != "abc123" {
		t.Fatalf("Expected one video item, got %v", videos)
	}
}

func TestGetFeaturedRejectsUnknownType(t *testing.T) {
	svc := NewContentService(contentFixture(), nil, sections.FeaturedLimits{})

	if _, err := svc.GetFeatured("podcasts", 3); err == nil {
		t.Fatal("Expected unknown content type rejection")
	}
}

func TestGetFeaturedDefaultsLimit(t *testing.T) {
	repo := &fakeContentRepo{}
	for i := 0; i < 10; i++ {
		repo.items = append(repo.items, models.Content{
			ID: uint(i + 1), Title: "Post", Type: models.ContentTypeBlog, Featured: true,
		})
	}
	svc := NewContentService(repo, nil, sections.FeaturedLimits{})

	items, err := svc.GetFeatured(models.ContentTypeBlog, 0)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected default limit of 3, got %d", len(items))
	}
}

func TestCreateNormalizesType(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, nil, sections.FeaturedLimits{})

	content := &models.Content{Title: "Novo Post", Type: " Blog "}
	if err := svc.Create(content); err != nil {
		t.Fatalf("Failed to create content: %v", err)
	}
	if content.Type != models.ContentTypeBlog {
		t.Fatalf("Expected normalized type, got %q", content.Type)
	}

	if err := svc.Create(&models.Content{Title: "Inválido", Type: "news"}); err == nil {
		t.Fatal("Expected unknown type rejection")
	}
}

func TestGetFeaturedHonorsConfiguredDefault(t *testing.T) {
	repo := &fakeContentRepo{}
	for i := 0; i < 10; i++ {
		repo.items = append(repo.items, models.Content{
			ID: uint(i + 1), Title: "Post", Type: models.ContentTypeBlog, Featured: true,
		})
	}
	svc := NewContentService(repo, nil, sections.FeaturedLimits{Default: 5, Max: 8})

	items, err := svc.GetFeatured(models.ContentTypeBlog, 0)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("Expected configured default of 5, got %d", len(items))
	}

	items, err = svc.GetFeatured(models.ContentTypeBlog, 50)
	if err != nil {
		t.Fatalf("Failed to get featured: %v", err)
	}
	if len(items) != 8 {
		t.Fatalf("Expected configured max of 8, got %d", len(items))
	}
}
