package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

// OrderRepo persists the global order list. Append rewrites the whole list
// with the new order attached, matching the slot storage model.
type OrderRepo interface {
	Load(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, orders []domain.Order) error
}

// CartClearer empties the cart after an order is recorded.
type CartClearer interface {
	Clear(ctx context.Context) error
}
