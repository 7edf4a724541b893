package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CartRepo persists the full line list. Save rewrites everything on each
// mutation; Load returns the empty list when nothing was ever saved.
type CartRepo interface {
	Load(ctx context.Context) ([]domain.Line, error)
	Save(ctx context.Context, lines []domain.Line) error
	Clear(ctx context.Context) error
}
