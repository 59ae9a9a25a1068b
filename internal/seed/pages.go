package seed

import (
	"errors"

	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/service"
	"content-commerce-backend/pkg/logger"

	"gorm.io/gorm"
)

// EnsureHomepage creates the published homepage from the homepage template
// if no page with the "home" slug exists yet.
func EnsureHomepage(pageService *service.PageService) {
	if pageService == nil {
		return
	}

	existing, err := pageService.GetBySlugAny("home")
	if err == nil {
		logger.Info("Homepage already present", map[string]interface{}{"id": existing.ID})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to look up homepage", nil)
		return
	}

	page, err := pageService.CreateFromTemplate("homepage", "Home", "home")
	if err != nil {
		logger.Error(err, "Failed to seed homepage", nil)
		return
	}

	published, err := pageService.Update(page.ID, models.UpdatePageRequest{Published: boolPtr(true)})
	if err != nil {
		logger.Error(err, "Failed to publish seeded homepage", map[string]interface{}{"id": page.ID})
		return
	}

	logger.Info("Seeded homepage", map[string]interface{}{
		"id":       published.ID,
		"sections": len(published.Sections),
	})
}

func boolPtr(value bool) *bool { return &value }
