package storefront

import (
	"fmt"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"go.uber.org/zap"
)

// CartItem is a denormalized product snapshot plus a quantity. Later
// catalog changes do not propagate to existing entries.
type CartItem struct {
	models.Product
	Quantity int `json:"quantity"`
}

// OrderSummary is the derived cart total breakdown.
type OrderSummary struct {
	Subtotal float64
	Shipping float64
	Total    float64
}

// Shipping is free strictly above the threshold, otherwise a flat fee.
const (
	freeShippingThreshold = 100.0
	flatShippingFee       = 10.0
)

// Cart returns a copy of the cart entries in insertion order.
func (s *Storefront) Cart() []CartItem {
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// InCart reports whether a product is already in the cart.
func (s *Storefront) InCart(productID int) bool {
	for _, item := range s.cart {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// AddToCart adds a product to the cart by id, incrementing the quantity
// if it is already present. It returns the confirmation notification, or
// ok=false if the id is not in the loaded catalog.
func (s *Storefront) AddToCart(productID int) (notification string, ok bool) {
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

	found := false
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, CartItem{Product: *product, Quantity: 1})
	}

	s.persist()
	return fmt.Sprintf("%s added to cart!", product.Name), true
}

// RemoveFromCart deletes the matching entry entirely.
func (s *Storefront) RemoveFromCart(productID int) {
	filtered := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}
	s.cart = filtered
	s.persist()
}

// UpdateQuantity adjusts an entry's quantity by delta. A result of zero
// or below removes the entry.
func (s *Storefront) UpdateQuantity(productID, delta int) {
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity += delta
			if s.cart[i].Quantity <= 0 {
				s.RemoveFromCart(productID)
				return
			}
			s.persist()
			return
		}
	}
}

// CartCount is the sum of all entries' quantities.
func (s *Storefront) CartCount() int {
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Summary computes the order summary over the current cart.
func (s *Storefront) Summary() OrderSummary {
	subtotal := 0.0
	for _, item := range s.cart {
		subtotal += item.Price * float64(item.Quantity)
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

func (s *Storefront) persist() {
	if err := s.storage.Save(s.cart); err != nil {
		s.logger.Error("Failed to persist cart", zap.Error(err))
	}
}
