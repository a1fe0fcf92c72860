package storefront

import (
	"fmt"
	"html"
	"strings"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
)

// iconKeywords maps a substring of the lowercased product name to its
// card icon. First match wins, so "earrings" lands on the ring icon.
var iconKeywords = []struct {
	keyword string
	icon    string
}{
	{"pendant", `<i class="fas fa-circle"></i>`},
	{"ring", `<i class="fas fa-ring"></i>`},
	{"bracelet", `<i class="fas fa-circle-notch"></i>`},
	{"necklace", `<i class="fas fa-circle"></i>`},
	{"earrings", `<i class="fas fa-circle"></i>`},
}

const genericIcon = `<i class="fas fa-gem"></i>`

// ProductIcon derives a card icon from the product name.
func ProductIcon(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range iconKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.icon
		}
	}
	return genericIcon
}

// escape neutralizes markup in user-supplied text before it is inserted
// into a fragment.
func escape(text string) string {
	return html.EscapeString(text)
}

// RenderProductCard renders a single product card. Products already in
// the cart get a disabled "In Cart" button.
func (s *Storefront) RenderProductCard(p models.Product) string {
	buttonText := "Add to Cart"
	buttonClass := "add-to-cart"
	disabled := ""
	if s.InCart(p.ID) {
		buttonText = "In Cart"
		buttonClass = "add-to-cart in-cart"
		disabled = " disabled"
	}

	return fmt.Sprintf(`<div class="product-card" data-product-id="%d">
  <div class="product-image" data-action="show-product" data-id="%d">%s</div>
  <div class="product-info">
    <h3 class="product-name">%s</h3>
    <p class="product-description">%s</p>
    <div class="product-footer">
      <span class="product-price">$%.2f</span>
      <button class="%s" data-action="add-to-cart" data-id="%d"%s>%s</button>
    </div>
  </div>
</div>`,
		p.ID, p.ID, ProductIcon(p.Name),
		escape(p.Name), escape(p.Description),
		p.Price, buttonClass, p.ID, disabled, buttonText)
}

// RenderGrid renders one card per product. An empty subsequence renders
// the no-products placeholder.
func (s *Storefront) RenderGrid(products []models.Product) string {
	if len(products) == 0 {
		return `<p class="no-products">No products found.</p>`
	}

	var b strings.Builder
	for _, p := range products {
		b.WriteString(s.RenderProductCard(p))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderProducts renders the full loaded catalog, or the load-error
// placeholder if the catalog fetch failed.
func (s *Storefront) RenderProducts() string {
	if s.loadFailed {
		return `<p class="error-message">Unable to load products</p>`
	}
	return s.RenderGrid(s.products)
}

// RenderFeatured renders the featured prefix of the catalog.
func (s *Storefront) RenderFeatured() string {
	featured := s.products
	if len(featured) > 3 {
		featured = featured[:3]
	}
	return s.RenderGrid(featured)
}

// FilterProducts applies a filter label to the catalog. "all" bypasses
// filtering; any other label is de-pluralized by stripping its trailing
// character and substring-matched, as-is, against the lowercased product
// name. Labels are expected to already be lowercase.
func (s *Storefront) FilterProducts(filter string) []models.Product {
	if filter == "all" {
		return s.products
	}

	// TODO: map irregular plural labels to categories instead of
	// trimming the final rune.
	singular := filter
	if len(singular) > 0 {
		singular = singular[:len(singular)-1]
	}

	out := []models.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), singular) {
			out = append(out, p)
		}
	}
	return out
}

// RenderProductModal renders the detail overlay for a product id. ok is
// false when the id is not in the loaded catalog.
func (s *Storefront) RenderProductModal(productID int) (fragment string, ok bool) {
	var product *models.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return "", false
	}

	gallery := append([]string{product.Image}, product.Gallery...)
	var imgs strings.Builder
	for _, img := range gallery {
		imgs.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="modal-gallery-img">`,
			escape(img), escape(product.Name)))
	}

	materials := product.Materials
	if materials == "" {
		materials = "Sterling silver, natural stones"
	}
	availability := "Out of Stock"
	if product.InStock {
		availability = "In Stock"
	}

	return fmt.Sprintf(`<div class="modal-product-details-page">
  <div class="modal-gallery">%s</div>
  <div class="modal-product-info">
    <h2>%s</h2>
    <div class="modal-product-price">$%.2f</div>
    <p class="modal-product-description">%s</p>
    <div class="modal-product-meta">
      <div><strong>Materials:</strong> %s</div>
      <div><strong>Care:</strong> Clean with soft cloth, avoid chemicals</div>
      <div><strong>Shipping:</strong> 3-5 business days</div>
      <div><strong>Availability:</strong> %s</div>
    </div>
    <button class="cta-button" data-action="add-to-cart" data-id="%d">Add to Cart</button>
  </div>
</div>`,
		imgs.String(), escape(product.Name), product.Price,
		escape(product.Description), escape(materials), availability, product.ID), true
}

// RenderCart renders the cart page: the empty state when there is
// nothing in the cart, otherwise the line items and the order summary.
func (s *Storefront) RenderCart() string {
	if len(s.cart) == 0 {
		return `<div class="empty-cart">Your cart is empty.</div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="cart-items">` + "\n")
	for _, item := range s.cart {
		b.WriteString(fmt.Sprintf(`<div class="cart-item">
  <div class="cart-item-image">%s</div>
  <div class="cart-item-info">
    <h4>%s</h4>
    <p>%s</p>
  </div>
  <div class="quantity-controls">
    <button class="quantity-btn" data-action="update-quantity" data-id="%d" data-delta="-1"><i class="fas fa-minus"></i></button>
    <span class="quantity">%d</span>
    <button class="quantity-btn" data-action="update-quantity" data-id="%d" data-delta="1"><i class="fas fa-plus"></i></button>
  </div>
  <div class="cart-item-price">$%.2f</div>
  <button class="remove-btn" data-action="remove-from-cart" data-id="%d"><i class="fas fa-trash"></i></button>
</div>
`,
			ProductIcon(item.Name), escape(item.Name), escape(item.Description),
			item.ID, item.Quantity, item.ID,
			item.Price*float64(item.Quantity), item.ID))
	}
	b.WriteString("</div>\n")

	summary := s.Summary()
	shippingLabel := fmt.Sprintf("$%.2f", summary.Shipping)
	if summary.Shipping == 0 {
		shippingLabel = "Free"
	}

	b.WriteString(fmt.Sprintf(`<div class="cart-summary">
  <h3>Order Summary</h3>
  <div class="summary-row"><span>Subtotal:</span><span>$%.2f</span></div>
  <div class="summary-row"><span>Shipping:</span><span>%s</span></div>
  <div class="summary-row total"><span>Total:</span><span>$%.2f</span></div>
  <button class="checkout-btn" data-action="checkout">Proceed to Checkout</button>
</div>`,
		summary.Subtotal, shippingLabel, summary.Total))

	return b.String()
}
