// Package storefront implements the browser-side half of the Aurora
// Jewelry demo as a plain Go state machine: a catalog snapshot fetched
// once from the catalog service, a cart persisted through CartStorage on
// every mutation, and HTML fragment rendering for the UI layer.
//
// All state is injected through New so the logic is testable without a
// rendering surface or a live server.
package storefront

import (
	"context"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"go.uber.org/zap"
)

// Storefront holds the client-side application state.
type Storefront struct {
	client  *CatalogClient
	storage CartStorage
	logger  *zap.Logger

	products    []models.Product
	cart        []CartItem
	currentPage string
	loadFailed  bool
}

// New creates a Storefront. The cart is loaded from storage once, here;
// anything unreadable degrades to an empty cart.
func New(client *CatalogClient, storage CartStorage, logger *zap.Logger) *Storefront {
	cart, err := storage.Load()
	if err != nil {
		logger.Warn("Failed to load stored cart, starting empty", zap.Error(err))
		cart = []CartItem{}
	}

	return &Storefront{
		client:      client,
		storage:     storage,
		logger:      logger,
		cart:        cart,
		currentPage: "home",
	}
}

// LoadProducts fetches the catalog once. On failure the grid renders the
// load-error placeholder instead; there is no retry.
func (s *Storefront) LoadProducts(ctx context.Context) error {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		s.loadFailed = true
		s.logger.Error("Error loading products", zap.Error(err))
		return err
	}
	s.products = products
	s.loadFailed = false
	return nil
}

// SetProducts replaces the catalog snapshot directly. Used by tests and
// by callers that already hold the catalog.
func (s *Storefront) SetProducts(products []models.Product) {
	s.products = products
	s.loadFailed = false
}

// Products returns the loaded catalog snapshot.
func (s *Storefront) Products() []models.Product {
	return s.products
}

// ShowPage switches the single active page. Switching to the cart page
// returns its rendered content; other pages are static.
func (s *Storefront) ShowPage(page string) string {
	s.currentPage = page
	if page == "cart" {
		return s.RenderCart()
	}
	return ""
}

// CurrentPage returns the name of the active page.
func (s *Storefront) CurrentPage() string {
	return s.currentPage
}

// Checkout is a placeholder: it acknowledges intent and performs no state
// transition and no network call.
func (s *Storefront) Checkout() string {
	return "Thank you for your order! In a real store, this would redirect to payment processing."
}
