package routes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aurora-jewelry/aurora-store/catalog-service/controllers"
	"github.com/aurora-jewelry/aurora-store/pkg/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all application routes onto the engine. publicDir
// holds the storefront's static assets; any non-API path falls back to its
// index.html for client-side routing.
func RegisterRoutes(
	r *gin.Engine,
	pc *controllers.ProductController,
	cc *controllers.ContactController,
	mc *controllers.MetaController,
	contactLimiter gin.HandlerFunc,
	publicDir string,
) {
	api := r.Group("/api")
	{
		api.GET("", mc.Index)
		api.GET("/products", pc.GetProducts)
		api.GET("/products/:id", pc.GetProductByID)
		api.GET("/products/category/:category", pc.GetProductsByCategory)
		api.GET("/search", pc.SearchProducts)
		api.GET("/featured", pc.GetFeaturedProducts)
		api.POST("/contact", contactLimiter, cc.SubmitContact)
		api.POST("/newsletter", contactLimiter, cc.SubscribeNewsletter)
		api.GET("/health", mc.Health)
		api.GET("/env", mc.Env)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(errors.ErrAPINotFound.Code, gin.H{
				"error":              errors.ErrAPINotFound.Message,
				"availableEndpoints": "/api",
			})
			return
		}

		// Serve the asset if it exists, otherwise fall back to index.html.
		asset := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}
		c.File(filepath.Join(publicDir, "index.html"))
	})
}
