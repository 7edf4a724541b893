package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/slotstore"
)

type CartRepo struct {
	store slotstore.Store
	log   *slog.Logger
}

func NewCartRepo(store slotstore.Store, log *slog.Logger) *CartRepo {
	return &CartRepo{store: store, log: log}
}

func (r *CartRepo) Load(ctx context.Context) ([]domain.Line, error) {
	data, err := r.store.Get(ctx, slotstore.SlotCart)
	if errors.Is(err, slotstore.ErrSlotEmpty) {
		return []domain.Line{}, nil
	}
	if err != nil {
		r.log.Warn("cart slot read failed", slog.Any("err", err))
		return []domain.Line{}, nil
	}

	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		r.log.Warn("cart slot corrupt", slog.Any("err", err))
		return []domain.Line{}, nil
	}
	return lines, nil
}

func (r *CartRepo) Save(ctx context.Context, lines []domain.Line) error {
	if lines == nil {
		lines = []domain.Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, slotstore.SlotCart, data)
}

func (r *CartRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, slotstore.SlotCart)
}
