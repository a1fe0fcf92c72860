package storefront_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"github.com/aurora-jewelry/aurora-store/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderProductCard_EscapesUserText(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.SetProducts([]models.Product{{
		ID:          1,
		Name:        `<script>alert("x")</script> & more`,
		Description: `a < b > c & "quotes"`,
		Price:       10.0,
	}})

	card := app.RenderProductCard(app.Products()[0])

	assert.NotContains(t, card, "<script>")
	assert.Contains(t, card, "&lt;script&gt;")
	assert.Contains(t, card, "&amp; more")
	assert.Contains(t, card, "&#34;quotes&#34;")
}

func TestRenderProductCard_PriceTwoDecimals(t *testing.T) {
	app, _ := newTestStorefront(t)

	card := app.RenderProductCard(app.Products()[0])

	assert.Contains(t, card, "$79.00")
}

func TestRenderProductCard_InCartState(t *testing.T) {
	app, _ := newTestStorefront(t)

	before := app.RenderProductCard(app.Products()[0])
	assert.Contains(t, before, "Add to Cart")
	assert.NotContains(t, before, "disabled")

	app.AddToCart(1)

	after := app.RenderProductCard(app.Products()[0])
	assert.Contains(t, after, "In Cart")
	assert.Contains(t, after, "in-cart")
	assert.Contains(t, after, "disabled")
}

func TestProductIcon_KeywordMatching(t *testing.T) {
	assert.Contains(t, storefront.ProductIcon("Aurora Pendant"), "fa-circle")
	assert.Contains(t, storefront.ProductIcon("Luna Ring"), "fa-ring")
	assert.Contains(t, storefront.ProductIcon("Solstice Bracelet"), "fa-circle-notch")
	assert.Contains(t, storefront.ProductIcon("Infinity Necklace"), "fa-circle")
	// "earrings" contains "ring", and first keyword match wins.
	assert.Contains(t, storefront.ProductIcon("Celestial Earrings"), "fa-ring")
	assert.Contains(t, storefront.ProductIcon("Mystery Box"), "fa-gem")
}

func TestRenderGrid_EmptyShowsPlaceholder(t *testing.T) {
	app, _ := newTestStorefront(t)

	out := app.RenderGrid(nil)

	assert.Contains(t, out, "No products found.")
}

func TestRenderProducts_LoadFailureShowsError(t *testing.T) {
	app := storefront.New(storefront.NewCatalogClient("http://127.0.0.1:1"), storefront.NewMemoryCartStore(), zap.NewNop())

	err := app.LoadProducts(context.Background())

	require.Error(t, err)
	assert.Contains(t, app.RenderProducts(), "Unable to load products")
}

func TestRenderFeatured_FirstThree(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.SetProducts([]models.Product{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"},
	})

	out := app.RenderFeatured()

	assert.Equal(t, 3, strings.Count(out, "product-card"))
	assert.NotContains(t, out, `data-product-id="4"`)
}

func TestFilterProducts_AllBypassesFilter(t *testing.T) {
	app, _ := newTestStorefront(t)

	assert.Len(t, app.FilterProducts("all"), 3)
}

func TestFilterProducts_StripsPluralAndMatchesName(t *testing.T) {
	app, _ := newTestStorefront(t)

	rings := app.FilterProducts("rings")

	require.Len(t, rings, 1)
	assert.Equal(t, "Luna Ring", rings[0].Name)

	bracelets := app.FilterProducts("bracelets")
	require.Len(t, bracelets, 1)
	assert.Equal(t, "Solstice Bracelet", bracelets[0].Name)
}

func TestFilterProducts_TokenMatchedVerbatim(t *testing.T) {
	app, _ := newTestStorefront(t)

	// Product names are lowercased before matching but the filter token
	// is used as-is, so a capitalized label never matches anything.
	assert.Empty(t, app.FilterProducts("Rings"))
}

func TestFilterProducts_NoMatch(t *testing.T) {
	app, _ := newTestStorefront(t)

	assert.Empty(t, app.FilterProducts("watches"))
}

func TestRenderProductModal_MetadataAndGallery(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.SetProducts([]models.Product{{
		ID:          1,
		Name:        "Aurora Pendant",
		Price:       79.0,
		Image:       "/images/pendant.jpg",
		Gallery:     []string{"/images/pendant-2.jpg"},
		Description: "Elegant pendant.",
		Materials:   "Sterling silver, crystal",
		InStock:     true,
	}})

	fragment, ok := app.RenderProductModal(1)

	require.True(t, ok)
	assert.Contains(t, fragment, "/images/pendant.jpg")
	assert.Contains(t, fragment, "/images/pendant-2.jpg")
	assert.Contains(t, fragment, "Sterling silver, crystal")
	assert.Contains(t, fragment, "Clean with soft cloth, avoid chemicals")
	assert.Contains(t, fragment, "3-5 business days")
	assert.Contains(t, fragment, "In Stock")
}

func TestRenderProductModal_Defaults(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.SetProducts([]models.Product{{ID: 1, Name: "Bare Item", Price: 5.0}})

	fragment, ok := app.RenderProductModal(1)

	require.True(t, ok)
	assert.Contains(t, fragment, "Sterling silver, natural stones")
	assert.Contains(t, fragment, "Out of Stock")
}

func TestRenderProductModal_UnknownID(t *testing.T) {
	app, _ := newTestStorefront(t)

	fragment, ok := app.RenderProductModal(999)

	assert.False(t, ok)
	assert.Empty(t, fragment)
}

func TestRenderCart_EmptyState(t *testing.T) {
	app, _ := newTestStorefront(t)

	out := app.RenderCart()

	assert.Contains(t, out, "Your cart is empty.")
	assert.NotContains(t, out, "Order Summary")
}

func TestRenderCart_LineItemsAndSummary(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.AddToCart(1) // 79.00
	app.AddToCart(1) // x2 = 158.00

	out := app.RenderCart()

	assert.Contains(t, out, "Aurora Pendant")
	assert.Contains(t, out, "$158.00") // extended line price
	assert.Contains(t, out, "Order Summary")
	assert.Contains(t, out, "Free") // subtotal over 100
	assert.Contains(t, out, "Proceed to Checkout")
}

func TestRenderCart_FlatShippingLabel(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.AddToCart(1) // 79.00 subtotal

	out := app.RenderCart()

	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "$89.00")
	assert.NotContains(t, out, "Free")
}

func TestRenderCart_EscapesItemText(t *testing.T) {
	app, _ := newTestStorefront(t)
	app.SetProducts([]models.Product{{
		ID:          1,
		Name:        `<b>Bold</b>`,
		Description: `"desc" & <i>`,
		Price:       10.0,
	}})
	app.AddToCart(1)

	out := app.RenderCart()

	assert.NotContains(t, out, "<b>Bold</b>")
	assert.Contains(t, out, "&lt;b&gt;Bold&lt;/b&gt;")
}
