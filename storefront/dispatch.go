package storefront

import (
	"fmt"
)

// Action is a UI event dispatched by name. Only the fields relevant to
// the named action need to be set.
type Action struct {
	Name      string
	ProductID int
	Delta     int
	Page      string
	Filter    string
}

// ActionResult carries what the UI layer needs to reflect an action: a
// rendered fragment, an optional transient notification, and the cart
// count for the indicator (hidden when zero).
type ActionResult struct {
	Fragment     string
	Notification string
	CartCount    int
}

type actionHandler func(s *Storefront, a Action) (ActionResult, error)

// dispatchTable routes action names to handlers. The UI layer invokes
// Dispatch with whatever its event wiring produces; everything else is
// testable without a rendering surface.
var dispatchTable = map[string]actionHandler{
	"add-to-cart": func(s *Storefront, a Action) (ActionResult, error) {
		notification, ok := s.AddToCart(a.ProductID)
		if !ok {
			return ActionResult{}, fmt.Errorf("unknown product id %d", a.ProductID)
		}
		// Re-render so cards pick up the In Cart state.
		return ActionResult{
			Fragment:     s.RenderProducts(),
			Notification: notification,
			CartCount:    s.CartCount(),
		}, nil
	},
	"remove-from-cart": func(s *Storefront, a Action) (ActionResult, error) {
		s.RemoveFromCart(a.ProductID)
		return ActionResult{Fragment: s.RenderCart(), CartCount: s.CartCount()}, nil
	},
	"update-quantity": func(s *Storefront, a Action) (ActionResult, error) {
		s.UpdateQuantity(a.ProductID, a.Delta)
		return ActionResult{Fragment: s.RenderCart(), CartCount: s.CartCount()}, nil
	},
	"show-page": func(s *Storefront, a Action) (ActionResult, error) {
		return ActionResult{Fragment: s.ShowPage(a.Page), CartCount: s.CartCount()}, nil
	},
	"show-product": func(s *Storefront, a Action) (ActionResult, error) {
		fragment, ok := s.RenderProductModal(a.ProductID)
		if !ok {
			return ActionResult{}, fmt.Errorf("unknown product id %d", a.ProductID)
		}
		return ActionResult{Fragment: fragment, CartCount: s.CartCount()}, nil
	},
	"filter": func(s *Storefront, a Action) (ActionResult, error) {
		return ActionResult{
			Fragment:  s.RenderGrid(s.FilterProducts(a.Filter)),
			CartCount: s.CartCount(),
		}, nil
	},
	"checkout": func(s *Storefront, a Action) (ActionResult, error) {
		return ActionResult{Notification: s.Checkout(), CartCount: s.CartCount()}, nil
	},
}

// Dispatch executes a named action against the storefront state.
func (s *Storefront) Dispatch(a Action) (ActionResult, error) {
	handler, ok := dispatchTable[a.Name]
	if !ok {
		return ActionResult{}, fmt.Errorf("unknown action %q", a.Name)
	}
	return handler(s, a)
}
