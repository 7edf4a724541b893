package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/slotstore"
)

// ProductRepo keeps the catalog in the products slot. Read or parse failures
// degrade to an empty catalog rather than propagating.
type ProductRepo struct {
	store slotstore.Store
	log   *slog.Logger
}

func NewProductRepo(store slotstore.Store, log *slog.Logger) *ProductRepo {
	return &ProductRepo{store: store, log: log}
}

func (r *ProductRepo) Load(ctx context.Context) ([]domain.Product, error) {
	data, err := r.store.Get(ctx, slotstore.SlotProducts)
	if errors.Is(err, slotstore.ErrSlotEmpty) {
		return []domain.Product{}, nil
	}
	if err != nil {
		r.log.Warn("products slot read failed", slog.Any("err", err))
		return []domain.Product{}, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Warn("products slot corrupt", slog.Any("err", err))
		return []domain.Product{}, nil
	}
	return products, nil
}

func (r *ProductRepo) Save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, slotstore.SlotProducts, data)
}

// Empty reports whether the products slot has never been written, which is
// the only case the seed fallback fires for.
func (r *ProductRepo) Empty(ctx context.Context) bool {
	_, err := r.store.Get(ctx, slotstore.SlotProducts)
	return errors.Is(err, slotstore.ErrSlotEmpty)
}
