package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrProcessing is the single user-facing message for persistence
	// failures during order placement.
	ErrProcessing = errors.New("there was an error processing your order")
)

type Service struct {
	repo OrderRepo
	cart CartClearer
	now  func() time.Time
}

func NewService(repo OrderRepo, cart CartClearer) *Service {
	return &Service{repo: repo, cart: cart, now: time.Now}
}

// PlaceRequest carries everything an order records: validated customer and
// payment fields plus the priced cart snapshot.
type PlaceRequest struct {
	CustomerName  string
	CustomerEmail string
	Items         []domain.Item
	Total         float64
	Address       domain.Address
	CardLast4     string
	CardExpiry    string
}

// Place records a new order and clears the cart. The cart is cleared only
// after the order list has been rewritten; a persistence failure leaves the
// cart untouched and surfaces ErrProcessing.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	orders, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	now := s.now()
	order := domain.Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Items:           req.Items,
		Total:           req.Total,
		Status:          domain.StatusPending,
		ShippingAddress: req.Address,
		Payment: domain.Payment{
			CardLast4:  req.CardLast4,
			CardExpiry: req.CardExpiry,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, append(orders, order)); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is recorded; a failed cart clear is not fatal.
		return order, nil
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrNotFound
}

// UpdateStatus overwrites the status without transition checks and bumps
// UpdatedAt.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, ErrInvalidStatus
	}

	orders, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = s.now()
		if err := s.repo.Save(ctx, orders); err != nil {
			return domain.Order{}, err
		}
		return orders[i], nil
	}
	return domain.Order{}, ErrNotFound
}

// ListByEmail returns a customer's orders by exact email match.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

type SortField string

const (
	SortByID      SortField = "id"
	SortByTotal   SortField = "total"
	SortByCreated SortField = "createdAt"
)

// ListQuery filters and sorts the admin order view. Zero values mean "all",
// newest first.
type ListQuery struct {
	Status     domain.Status
	Search     string
	Sort       SortField
	Descending bool
}

// List returns orders matching the query. Search matches order id, customer
// name or email, case-insensitively.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if search != "" && !matches(o, search) {
			continue
		}
		out = append(out, o)
	}

	field := q.Sort
	if field == "" {
		field = SortByCreated
	}
	desc := q.Descending || q.Sort == ""

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch field {
		case SortByID:
			less = out[i].ID < out[j].ID
		case SortByTotal:
			less = out[i].Total < out[j].Total
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if desc {
			return !less && !equalField(out[i], out[j], field)
		}
		return less
	})

	return out, nil
}

func matches(o domain.Order, search string) bool {
	return strings.Contains(strings.ToLower(o.ID), search) ||
		strings.Contains(strings.ToLower(o.CustomerName), search) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), search)
}

func equalField(a, b domain.Order, field SortField) bool {
	switch field {
	case SortByID:
		return a.ID == b.ID
	case SortByTotal:
		return a.Total == b.Total
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}
