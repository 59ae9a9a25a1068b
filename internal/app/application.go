package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"content-commerce-backend/internal/config"
	"content-commerce-backend/internal/handlers"
	"content-commerce-backend/internal/middleware"
	"content-commerce-backend/internal/models"
	"content-commerce-backend/internal/render"
	"content-commerce-backend/internal/repository"
	"content-commerce-backend/internal/sections"
	"content-commerce-backend/internal/seed"
	"content-commerce-backend/internal/service"
	"content-commerce-backend/pkg/cache"
	"content-commerce-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Page     repository.PageRepository
	Product  repository.ProductRepository
	Content  repository.ContentRepository
	Taxonomy repository.TaxonomyRepository
}

type serviceContainer struct {
	Page     *service.PageService
	Product  *service.ProductService
	Content  *service.ContentService
	Taxonomy *service.TaxonomyService
}

type handlerContainer struct {
	Page     *handlers.PageHandler
	Builder  *handlers.PageBuilderHandler
	Section  *handlers.SectionHandler
	Product  *handlers.ProductHandler
	Content  *handlers.ContentHandler
	Taxonomy *handlers.TaxonomyHandler
	Render   *handlers.RenderHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()

	if cfg.EnableSeed {
		seed.EnsureDefaultTaxonomies(app.services.Taxonomy)
		seed.EnsureHomepage(app.services.Page)
	}

	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Page{},
		&models.Product{},
		&models.Content{},
		&models.Taxonomy{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_slug ON pages(slug) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_sections ON pages USING GIN (sections)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_tags ON products USING GIN (category_tags)",
		"CREATE INDEX IF NOT EXISTS idx_products_search_tags ON products USING GIN (search_tags)",
		"CREATE INDEX IF NOT EXISTS idx_contents_type_featured ON contents(type, featured)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	enable := a.cfg.EnableCache && a.cfg.EnableRedis

	c, err := cache.NewCache(a.cfg.RedisURL, enable)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Page:     repository.NewPageRepository(a.db),
		Product:  repository.NewProductRepository(a.db),
		Content:  repository.NewContentRepository(a.db),
		Taxonomy: repository.NewTaxonomyRepository(a.db),
	}
}

func (a *Application) initServices() {
	registry := sections.DefaultRegistry()
	limits := a.featuredLimits()

	a.services = serviceContainer{
		Page:     service.NewPageService(a.repositories.Page, registry, a.cache),
		Product:  service.NewProductService(a.repositories.Product, a.cache, limits),
		Content:  service.NewContentService(a.repositories.Content, a.cache, limits),
		Taxonomy: service.NewTaxonomyService(a.repositories.Taxonomy, a.cache),
	}
}

func (a *Application) featuredLimits() sections.FeaturedLimits {
	return sections.FeaturedLimits{
		Default: a.cfg.DefaultFeaturedLimit,
		Max:     a.cfg.MaxFeaturedLimit,
	}
}

func (a *Application) initHandlers() {
	engine := render.NewEngine(nil)
	source := service.NewRenderSource(a.services.Product, a.services.Content)

	a.handlers = handlerContainer{
		Page:     handlers.NewPageHandler(a.services.Page),
		Builder:  handlers.NewPageBuilderHandler(a.services.Page),
		Section:  handlers.NewSectionHandler(a.services.Page),
		Product:  handlers.NewProductHandler(a.services.Product),
		Content:  handlers.NewContentHandler(a.services.Content),
		Taxonomy: handlers.NewTaxonomyHandler(a.services.Taxonomy),
		Render: handlers.NewRenderHandler(a.services.Page, engine, source, render.Site{
			Name:        a.cfg.SiteName,
			Description: a.cfg.SiteDescription,
			URL:         a.cfg.SiteURL,
		}, a.featuredLimits()),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	{
		public := api.Group("")
		{
			public.GET("/pages", a.handlers.Page.GetAll)
			public.GET("/pages/:slug", a.handlers.Page.GetBySlug)
			public.GET("/pages/:slug/html", a.handlers.Render.RenderPage)

			public.GET("/products", a.handlers.Product.Filter)
			public.GET("/products/featured", a.handlers.Product.GetFeatured)
			public.GET("/products/:id", a.handlers.Product.GetByID)

			public.GET("/content/:type", a.handlers.Content.GetByType)
			public.GET("/content/:type/featured", a.handlers.Content.GetFeatured)
			public.POST("/content/:type/:id/views", a.handlers.Content.RegisterView)

			public.GET("/taxonomies", a.handlers.Taxonomy.GetTree)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/pages", a.handlers.Page.GetAllAdmin)
			admin.GET("/pages/:id", a.handlers.Page.GetByID)
			admin.POST("/pages", a.handlers.Page.Create)
			admin.PUT("/pages/:id", a.handlers.Page.Update)
			admin.DELETE("/pages/:id", a.handlers.Page.Delete)
			admin.PUT("/pages/:id/publish", a.handlers.Page.Publish)
			admin.PUT("/pages/:id/unpublish", a.handlers.Page.Unpublish)
			admin.POST("/pages/:id/duplicate", a.handlers.Builder.DuplicatePage)

			admin.POST("/pages/:id/sections", a.handlers.Builder.AddSection)
			admin.PUT("/pages/:id/sections/:sectionId", a.handlers.Builder.UpdateSection)
			admin.DELETE("/pages/:id/sections/:sectionId", a.handlers.Builder.DeleteSection)
			admin.PUT("/pages/:id/sections", a.handlers.Builder.ReorderSections)
			admin.POST("/pages/:id/sections/:sectionId/duplicate", a.handlers.Builder.DuplicateSection)
			admin.POST("/pages/:id/template", a.handlers.Builder.ApplyTemplate)

			admin.GET("/builder/config", a.handlers.Builder.GetConfig)
			admin.GET("/builder/templates", a.handlers.Builder.GetTemplates)
			admin.GET("/builder/section-types", a.handlers.Section.ListTypes)
			admin.POST("/builder/validate", a.handlers.Section.Validate)

			admin.GET("/preview/:slug", a.handlers.Render.PreviewPage)

			admin.POST("/products", a.handlers.Product.Create)
			admin.PUT("/products/:id", a.handlers.Product.Update)
			admin.DELETE("/products/:id", a.handlers.Product.Delete)

			admin.POST("/content", a.handlers.Content.Create)
			admin.PUT("/content/:id", a.handlers.Content.Update)
			admin.DELETE("/content/:id", a.handlers.Content.Delete)

			admin.POST("/taxonomies", a.handlers.Taxonomy.Create)
			admin.DELETE("/taxonomies/:id", a.handlers.Taxonomy.Delete)

			admin.GET("/stats", handlers.GetStatistics(a.db))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
