package repository

import (
	"context"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
)

// CatalogRepository defines the read operations over the product catalog.
// The catalog is immutable for the process lifetime, so there are no
// create/update/delete operations.
type CatalogRepository interface {
	// FindAll returns every product in insertion order.
	FindAll(ctx context.Context) ([]models.Product, error)
	// FindByID returns the product with the given id, or ErrProductNotFound.
	FindByID(ctx context.Context, id int) (*models.Product, error)
	// FindByCategory returns products whose category equals the lowercased
	// input. No match yields an empty slice, not an error.
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	// Search returns products whose name, description or category contains
	// the query as a case-insensitive substring. An empty query returns the
	// full catalog.
	Search(ctx context.Context, query string) ([]models.Product, error)
	// Featured returns the first n products in catalog order.
	Featured(ctx context.Context, n int) ([]models.Product, error)
}
