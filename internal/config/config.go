package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Database
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string

	// Redis
	EnableRedis bool
	RedisURL    string

	// JWT (admin guard only; token issuing lives outside this service)
	JWTSecret string

	// Server
	Port        string
	Environment string

	// CORS
	CORSOrigins []string

	// Features
	EnableCache   bool
	EnableMetrics bool
	EnableSeed    bool

	// Rendering
	DefaultFeaturedLimit int
	MaxFeaturedLimit     int

	// Site Meta
	SiteName        string
	SiteDescription string
	SiteURL         string
}

func New() *Config {
	c := &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "karoouser"),
		DBPassword: getEnv("DB_PASSWORD", "karoopassword"),
		DBName:     getEnv("DB_NAME", "contentdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "change-this-admin-secret-in-production"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),

		// Features
		EnableCache:   getEnvAsBool("ENABLE_CACHE", true),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		EnableSeed:    getEnvAsBool("ENABLE_SEED", true),

		// Rendering
		DefaultFeaturedLimit: getEnvAsInt("DEFAULT_FEATURED_LIMIT", 3),
		MaxFeaturedLimit:     getEnvAsInt("MAX_FEATURED_LIMIT", 12),

		// Site Meta
		SiteName:        getEnv("SITE_NAME", "Content Commerce"),
		SiteDescription: getEnv("SITE_DESCRIPTION", "Curated content and product recommendations for busy families."),
		SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
	}

	if c.DefaultFeaturedLimit < 1 {
		c.DefaultFeaturedLimit = 3
	}
	if c.MaxFeaturedLimit < c.DefaultFeaturedLimit {
		c.MaxFeaturedLimit = c.DefaultFeaturedLimit
	}

	// Build DSN
	c.DatabaseURL = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
