package models

// Product is a single catalog entry. The catalog is seeded at startup and
// never mutated afterwards; id is unique across the catalog.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Materials   string   `json:"materials,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
	InStock     bool     `json:"inStock"`
}
