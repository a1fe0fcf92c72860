package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// envWhitelist lists the environment variables that are safe to expose to
// clients. Everything else is withheld.
var envWhitelist = []string{"APP_ENV", "APP_NAME", "APP_PORT"}

// MetaController serves the health check, env and API description
// endpoints.
type MetaController struct {
	startedAt time.Time
}

// NewMetaController creates a new MetaController. Uptime is measured from
// construction, which happens once at process startup.
func NewMetaController() *MetaController {
	return &MetaController{startedAt: time.Now()}
}

// Health reports service liveness and uptime in seconds.
func (mc *MetaController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(mc.startedAt).Seconds(),
	})
}

// Env returns the whitelisted subset of the process environment.
func (mc *MetaController) Env(c *gin.Context) {
	result := gin.H{}
	for _, key := range envWhitelist {
		if value := os.Getenv(key); value != "" {
			result[key] = value
		}
	}
	c.JSON(http.StatusOK, result)
}

// Index returns the API description document.
func (mc *MetaController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Aurora Jewelry API",
		"version":     "1.0.0",
		"description": "API for Aurora Jewelry store",
		"endpoints": gin.H{
			"GET /api/products":                    "Get all products",
			"GET /api/products/:id":                "Get single product",
			"GET /api/products/category/:category": "Get products by category",
			"GET /api/search?q=query":              "Search products",
			"GET /api/featured":                    "Get featured products",
			"POST /api/contact":                    "Submit contact form",
			"POST /api/newsletter":                 "Subscribe to newsletter",
			"GET /api/health":                      "Health check",
			"GET /api/env":                         "Get safe environment variables",
		},
	})
}
