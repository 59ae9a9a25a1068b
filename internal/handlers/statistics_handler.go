package handlers

import (
	"net/http"
	"time"

	"content-commerce-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStatistics serves the admin dashboard counters.
func GetStatistics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC()

		var stats struct {
			TotalPages       int64 `json:"total_pages"`
			PublishedPages   int64 `json:"published_pages"`
			TotalProducts    int64 `json:"total_products"`
			FeaturedProducts int64 `json:"featured_products"`
			TotalContent     int64 `json:"total_content"`
			TotalTaxonomies  int64 `json:"total_taxonomies"`
			TotalViews       int64 `json:"total_views"`
			ContentLast7Days int64 `json:"content_last_7_days"`
		}

		db.Model(&models.Page{}).Count(&stats.TotalPages)
		db.Model(&models.Page{}).Where("published = ?", true).Count(&stats.PublishedPages)
		db.Model(&models.Product{}).Count(&stats.TotalProducts)
		db.Model(&models.Product{}).Where("featured = ?", true).Count(&stats.FeaturedProducts)
		db.Model(&models.Content{}).Count(&stats.TotalContent)
		db.Model(&models.Taxonomy{}).Count(&stats.TotalTaxonomies)
		db.Model(&models.Content{}).Select("COALESCE(SUM(views), 0)").Row().Scan(&stats.TotalViews)

		sevenDaysAgo := now.AddDate(0, 0, -7)
		db.Model(&models.Content{}).
			Where("created_at >= ?", sevenDaysAgo).
			Count(&stats.ContentLast7Days)

		var popularContent []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
			Type  string `json:"type"`
			Views int    `json:"views"`
		}

		db.Model(&models.Content{}).
			Select("id, title, type, views").
			Order("views DESC").
			Limit(5).
			Scan(&popularContent)

		c.JSON(http.StatusOK, gin.H{
			"statistics":      stats,
			"popular_content": popularContent,
		})
	}
}
