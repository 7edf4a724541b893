package rest

import (
	"encoding/json"
	"net/http"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "email is required"})
		return
	}

	orders, err := s.orders.ListByEmail(r.Context(), email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(orders))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := orderapp.ListQuery{
		Status:     orderdomain.Status(r.URL.Query().Get("status")),
		Search:     r.URL.Query().Get("q"),
		Sort:       orderapp.SortField(r.URL.Query().Get("sort")),
		Descending: r.URL.Query().Get("dir") == "desc",
	}
	if q.Status != "" && !q.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "unknown status"})
		return
	}

	orders, err := s.orders.List(r.Context(), q)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(orders))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed body"})
		return
	}

	order, err := s.orders.UpdateStatus(r.Context(), r.PathValue("id"), orderdomain.Status(req.Status))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
