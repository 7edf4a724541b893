package rest

import (
	"encoding/json"
	"net/http"
	"time"

	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

// handleCheckout validates the form, re-quotes the cart and records the
// order. Field violations come back as a 422 with the full field→message
// map so the client can render them all at once.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var form checkoutdomain.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed body"})
		return
	}

	if errs := form.Validate(time.Now()); !errs.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, struct {
			Errors checkoutdomain.Errors `json:"errors"`
		}{errs})
		return
	}

	items, summary, err := s.checkout.Quote(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if len(items) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "EMPTY_CART", Message: "cart is empty"})
		return
	}

	orderItems := make([]orderdomain.Item, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, orderdomain.Item{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	order, err := s.orders.Place(r.Context(), orderapp.PlaceRequest{
		CustomerName:  form.CustomerName(),
		CustomerEmail: form.Email,
		Items:         orderItems,
		Total:         summary.Total,
		Address: orderdomain.Address{
			Street:  form.Address,
			City:    form.City,
			State:   form.State,
			ZipCode: form.ZipCode,
			Country: form.Country,
		},
		CardLast4:  form.CardLast4(),
		CardExpiry: form.CardExpiry,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handlePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "orderId is required"})
		return
	}

	order, err := s.orders.Get(r.Context(), req.OrderID)
	if err != nil {
		writeErr(w, err)
		return
	}

	intent, err := s.payments.CreateIntent(r.Context(), order.Total, order.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, intent)
}
