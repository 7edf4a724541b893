package seed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	empty bool
	saved []domain.Product
}

func (f *fakeRepo) Empty(ctx context.Context) bool { return f.empty }
func (f *fakeRepo) Save(ctx context.Context, products []domain.Product) error {
	f.saved = products
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSeedsEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"p1","name":"Mug","price":8,"stock":3}]`)
	}))
	defer srv.Close()

	repo := &fakeRepo{empty: true}
	Run(context.Background(), repo, srv.URL, discardLogger())

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "Mug", repo.saved[0].Name)
	assert.Equal(t, 3, repo.saved[0].Stock)
}

func TestRunSkipsNonEmptyCatalog(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	repo := &fakeRepo{empty: false}
	Run(context.Background(), repo, srv.URL, discardLogger())

	assert.False(t, called, "seed must not fetch when the catalog exists")
	assert.Nil(t, repo.saved)
}

func TestRunSwallowsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := &fakeRepo{empty: true}
	Run(context.Background(), repo, srv.URL, discardLogger())

	assert.Nil(t, repo.saved, "failed seed leaves the catalog empty")
}
