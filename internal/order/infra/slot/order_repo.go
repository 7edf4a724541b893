package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/slotstore"
)

type OrderRepo struct {
	store slotstore.Store
	log   *slog.Logger
}

func NewOrderRepo(store slotstore.Store, log *slog.Logger) *OrderRepo {
	return &OrderRepo{store: store, log: log}
}

func (r *OrderRepo) Load(ctx context.Context) ([]domain.Order, error) {
	data, err := r.store.Get(ctx, slotstore.SlotOrders)
	if errors.Is(err, slotstore.ErrSlotEmpty) {
		return []domain.Order{}, nil
	}
	if err != nil {
		r.log.Warn("orders slot read failed", slog.Any("err", err))
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.log.Warn("orders slot corrupt", slog.Any("err", err))
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (r *OrderRepo) Save(ctx context.Context, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, slotstore.SlotOrders, data)
}
