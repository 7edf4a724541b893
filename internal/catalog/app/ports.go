package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ProductRepo persists the whole catalog as one collection. Save rewrites
// the full list, matching the slot-per-collection storage model.
type ProductRepo interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
}
