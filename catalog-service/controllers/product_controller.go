package controllers

import (
	"net/http"
	"strconv"

	"github.com/aurora-jewelry/aurora-store/catalog-service/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductController serves the read-only catalog endpoints.
type ProductController struct {
	catalog services.CatalogService
}

// NewProductController creates a new ProductController.
func NewProductController(catalog services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts returns the full catalog in insertion order.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, svcErr := pc.catalog.ListProducts(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a single product or a 404.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		zap.L().Warn("Invalid product id", zap.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, svcErr := pc.catalog.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductsByCategory returns the products in a category, case-insensitive.
// An unknown category yields an empty array.
func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	products, svcErr := pc.catalog.ListByCategory(c.Request.Context(), c.Param("category"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts returns products matching the q query parameter as a
// case-insensitive substring of name, description or category. An empty
// query returns the full catalog.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, svcErr := pc.catalog.Search(c.Request.Context(), c.Query("q"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts returns the fixed featured window.
func (pc *ProductController) GetFeaturedProducts(c *gin.Context) {
	products, svcErr := pc.catalog.Featured(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, products)
}
