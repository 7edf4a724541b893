package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

// CartAccess is what checkout needs from the cart: the current lines and the
// two mutations a quantity edit can trigger.
type CartAccess interface {
	Lines(ctx context.Context) []CartLine
	Remove(ctx context.Context, productID string) error
	ReplaceAll(ctx context.Context, lines []CartLine) error
}

type CartLine struct {
	ProductID string
	Quantity  int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price float64
	Stock int
}

// ErrProductNotFound is what catalog readers return for unknown ids; the
// join treats it as "drop the line", not as a failure.
var ErrProductNotFound = errors.New("product not found")

// ErrExceedsStock rejects a quantity edit above the product's current stock.
// The cart is left unchanged; callers may surface a warning.
var ErrExceedsStock = errors.New("requested quantity exceeds stock")

type Service struct {
	cart    CartAccess
	catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartAccess, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	return &Service{cart: cart, catalog: catalog, maxConcurrent: maxConcurrent}
}

// Quote joins the cart against the live catalog and summarizes it.
//
// Drop/clamp policy:
//   - product missing or without stock  -> line dropped silently
//   - line quantity above current stock -> presented quantity clamped
//
// A stale cart never blocks the quote; unresolvable lines just vanish.
func (s *Service) Quote(ctx context.Context) ([]domain.PricedItem, domain.Summary, error) {
	lines := s.cart.Lines(ctx)
	if len(lines) == 0 {
		return nil, domain.Summary{}, nil
	}

	joined := make([]*domain.PricedItem, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		g.Go(func() error {
			line := lines[idx]

			product, err := s.catalog.GetProduct(ctx, line.ProductID)
			if errors.Is(err, ErrProductNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if product.Stock <= 0 {
				return nil
			}

			qty := line.Quantity
			if qty > product.Stock {
				qty = product.Stock
			}
			joined[idx] = &domain.PricedItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  qty,
				Stock:     product.Stock,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.Summary{}, err
	}

	items := make([]domain.PricedItem, 0, len(joined))
	for _, it := range joined {
		if it != nil {
			items = append(items, *it)
		}
	}
	return items, domain.Summarize(items), nil
}

// SetQuantity applies a quantity edit. Below 1 removes the line; above the
// product's stock the edit is rejected with ErrExceedsStock and the cart is
// untouched. Edits to products not in the cart are no-ops.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return s.cart.Remove(ctx, productID)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if quantity > product.Stock {
		return ErrExceedsStock
	}

	lines := s.cart.Lines(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return s.cart.ReplaceAll(ctx, lines)
		}
	}
	return nil
}
