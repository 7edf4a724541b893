package app

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// Service is the authoritative cart for the current session. It holds the
// lines in memory and writes the whole list through to the repo on every
// mutation. No stock checking happens here; that is the checkout join's job.
type Service struct {
	mu    sync.Mutex
	repo  CartRepo
	lines []domain.Line
}

func NewService(ctx context.Context, repo CartRepo) (*Service, error) {
	lines, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, lines: lines}, nil
}

// Lines returns a copy of the current cart lines.
func (s *Service) Lines(_ context.Context) []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Add increments the existing line for productID by quantity, or appends a
// new line. No upper bound is enforced.
func (s *Service) Add(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, domain.Line{ProductID: productID, Quantity: quantity})
	}
	return s.repo.Save(ctx, s.lines)
}

// Remove deletes the line for productID. Removing an absent line is a no-op
// but still persists, matching the original write-on-every-mutation behavior.
func (s *Service) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return s.repo.Save(ctx, s.lines)
}

// ReplaceAll overwrites the cart wholesale, used after quantity edits.
func (s *Service) ReplaceAll(ctx context.Context, lines []domain.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]domain.Line, len(lines))
	copy(s.lines, lines)
	return s.repo.Save(ctx, s.lines)
}

// Clear empties the cart. Invoked once, right after an order is recorded.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.repo.Clear(ctx)
}
