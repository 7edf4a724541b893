package domain

import "math"

// PricedItem is a cart line joined against the live catalog: quantity already
// clamped to stock, price and name as currently listed.
type PricedItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Stock     int     `json:"stock"`
}

// Summary is derived from priced items and never persisted.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

const (
	taxRate           = 0.10
	shippingFlat      = 10.0
	freeShippingAbove = 100.0
)

// Summarize computes subtotal, tax, shipping and total. Values stay
// unrounded; rounding is a display concern (Round2). The shipping boundary
// is strict: a subtotal of exactly 100 still pays shipping.
func Summarize(items []PricedItem) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	shipping := shippingFlat
	if subtotal > freeShippingAbove {
		shipping = 0
	}

	tax := subtotal * taxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// Round2 rounds a monetary value to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
