package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

// handleGetCart returns the joined, clamped view plus its summary, which is
// what a cart screen renders.
func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items, summary, err := s.checkout.Quote(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Items   any `json:"items"`
		Summary any `json:"summary"`
	}{orEmpty(items), summary})
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "productId is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	// Out-of-stock products cannot be added at all.
	product, err := s.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !product.InStock() {
		writeJSON(w, http.StatusConflict, errorBody{Code: "OUT_OF_STOCK", Message: "sorry, this item is out of stock"})
		return
	}

	if err := s.cart.Add(r.Context(), req.ProductID, req.Quantity); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed body"})
		return
	}

	err := s.checkout.SetQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	if errors.Is(err, checkoutapp.ErrExceedsStock) {
		// The edit is dropped; tell the client why so it can warn.
		writeJSON(w, http.StatusConflict, errorBody{Code: "EXCEEDS_STOCK", Message: err.Error()})
		return
	}
	if err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
