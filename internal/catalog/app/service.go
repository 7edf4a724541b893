package app

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
	now  func() time.Time
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Stock       int
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.Price < 0 || in.Stock < 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	products, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	now := s.now()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, append(products, p)); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	products, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = strings.TrimSpace(in.Name)
		products[i].Description = in.Description
		products[i].Price = in.Price
		products[i].Image = in.Image
		products[i].Category = in.Category
		products[i].Stock = in.Stock
		products[i].UpdatedAt = s.now()

		if err := s.repo.Save(ctx, products); err != nil {
			return domain.Product{}, err
		}
		return products[i], nil
	}
	return domain.Product{}, ErrNotFound
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.Save(ctx, kept)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}

	products, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// ListProducts returns the catalog filtered by an optional category and an
// optional case-insensitive name query.
func (s *Service) ListProducts(ctx context.Context, category, query string) ([]domain.Product, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Featured returns up to limit products, newest first.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// Categories returns the distinct non-empty categories, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

// StockCounts reports how many products are in and out of stock, for the
// admin dashboard.
func (s *Service) StockCounts(ctx context.Context) (inStock, outOfStock int, err error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, p := range products {
		if p.InStock() {
			inStock++
		} else {
			outOfStock++
		}
	}
	return inStock, outOfStock, nil
}
