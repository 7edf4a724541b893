package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceAccess struct {
	svc *cartapp.Service
}

func NewCartServiceAccess(svc *cartapp.Service) *CartServiceAccess {
	return &CartServiceAccess{svc: svc}
}

func (a *CartServiceAccess) Lines(ctx context.Context) []checkoutapp.CartLine {
	lines := a.svc.Lines(ctx)
	out := make([]checkoutapp.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, checkoutapp.CartLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return out
}

func (a *CartServiceAccess) Remove(ctx context.Context, productID string) error {
	return a.svc.Remove(ctx, productID)
}

func (a *CartServiceAccess) ReplaceAll(ctx context.Context, lines []checkoutapp.CartLine) error {
	out := make([]cartdomain.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartdomain.Line{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return a.svc.ReplaceAll(ctx, out)
}
