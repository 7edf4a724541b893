// Package seed populates an empty catalog from a static JSON document.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type Repo interface {
	Empty(ctx context.Context) bool
	Save(ctx context.Context, products []domain.Product) error
}

// Run fetches url once and writes the result to the catalog, only when the
// catalog slot has never been written. Best effort: any failure leaves the
// catalog empty and is logged, never returned. No retry.
func Run(ctx context.Context, repo Repo, url string, log *slog.Logger) {
	if url == "" || !repo.Empty(ctx) {
		return
	}

	products, err := fetch(ctx, url)
	if err != nil {
		log.Warn("catalog seed fetch failed", slog.String("url", url), slog.Any("err", err))
		return
	}

	if err := repo.Save(ctx, products); err != nil {
		log.Warn("catalog seed save failed", slog.Any("err", err))
		return
	}
	log.Info("catalog seeded", slog.Int("products", len(products)))
}

func fetch(ctx context.Context, url string) ([]domain.Product, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed fetch: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}
