package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// MemoryCatalog is an in-memory CatalogRepository. Products are copied on
// the way out so callers cannot mutate the seed data.
type MemoryCatalog struct {
	products []models.Product
}

// NewMemoryCatalog creates a MemoryCatalog over the given products.
func NewMemoryCatalog(products []models.Product) *MemoryCatalog {
	return &MemoryCatalog{products: products}
}

// NewSeededCatalog creates a MemoryCatalog holding the Aurora Jewelry
// product line.
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedProducts())
}

func (m *MemoryCatalog) FindAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryCatalog) FindByID(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *MemoryCatalog) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.ToLower(category)
	out := []models.Product{}
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.ToLower(query)
	if query == "" {
		return m.FindAll(ctx)
	}

	out := []models.Product{}
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryCatalog) Featured(ctx context.Context, n int) ([]models.Product, error) {
	if n > len(m.products) {
		n = len(m.products)
	}
	out := make([]models.Product, n)
	copy(out, m.products[:n])
	return out, nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Aurora Pendant",
			Price:       79.0,
			Image:       "/images/pendant.jpg",
			Description: "Elegant sterling silver pendant with crystal accents that capture light beautifully.",
			Category:    "necklaces",
			Materials:   "Sterling silver, crystal",
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Luna Ring",
			Price:       129.0,
			Image:       "/images/ring.jpg",
			Description: "Delicate gold-plated ring with moonstone center, perfect for everyday elegance.",
			Category:    "rings",
			Materials:   "Gold-plated silver, moonstone",
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Solstice Bracelet",
			Price:       95.0,
			Image:       "/images/bracelet.jpg",
			Description: "Handmade beaded bracelet with mixed metals and natural stone accents.",
			Category:    "bracelets",
			Materials:   "Mixed metals, natural stones",
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Celestial Earrings",
			Price:       65.0,
			Image:       "/images/earrings.jpg",
			Description: "Star-inspired drop earrings in sterling silver with subtle sparkle.",
			Category:    "earrings",
			Materials:   "Sterling silver, cubic zirconia",
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Infinity Necklace",
			Price:       110.0,
			Image:       "/images/necklace.jpg",
			Description: "Modern infinity symbol necklace in rose gold with diamond accents.",
			Category:    "necklaces",
			Materials:   "Rose gold, diamonds",
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Cosmic Ring Set",
			Price:       180.0,
			Image:       "/images/ring-set.jpg",
			Description: "Set of three stackable rings inspired by planetary movements.",
			Category:    "rings",
			Materials:   "Mixed metals, gemstones",
			InStock:     true,
		},
		{
			ID:          7,
			Name:        "Stardust Choker",
			Price:       85.0,
			Image:       "/images/choker.jpg",
			Description: "Delicate choker necklace with tiny star charms and adjustable chain.",
			Category:    "necklaces",
			Materials:   "Sterling silver, star charms",
			InStock:     true,
		},
		{
			ID:          8,
			Name:        "Galaxy Cuff",
			Price:       145.0,
			Image:       "/images/cuff.jpg",
			Description: "Bold cuff bracelet with swirling patterns reminiscent of distant galaxies.",
			Category:    "bracelets",
			Materials:   "Sterling silver, oxidized finish",
			InStock:     true,
		},
	}
}
