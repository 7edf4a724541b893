// Package rest exposes the storefront over an HTTP JSON API. Handlers stay
// thin; every decision lives in the app services and the access gate.
package rest

import (
	"log/slog"
	"net/http"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/payment"

	"github.com/dwikikusuma/storefront/internal/auth/gate"
)

type Server struct {
	log      *slog.Logger
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	auth     *authapp.Service
	payments *payment.Client
	tokens   *Tokens
}

type Deps struct {
	Log      *slog.Logger
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Checkout *checkoutapp.Service
	Orders   *orderapp.Service
	Auth     *authapp.Service
	Payments *payment.Client
	Tokens   *Tokens
}

func NewServer(d Deps) *Server {
	return &Server{
		log:      d.Log,
		catalog:  d.Catalog,
		cart:     d.Cart,
		checkout: d.Checkout,
		orders:   d.Orders,
		auth:     d.Auth,
		payments: d.Payments,
		tokens:   d.Tokens,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	// Public storefront.
	mux.HandleFunc("GET /products", s.handleListProducts)
	mux.HandleFunc("GET /products/featured", s.handleFeatured)
	mux.HandleFunc("GET /products/{id}", s.handleGetProduct)
	mux.HandleFunc("GET /categories", s.handleCategories)

	mux.HandleFunc("GET /cart", s.handleGetCart)
	mux.HandleFunc("POST /cart/items", s.handleAddToCart)
	mux.HandleFunc("PUT /cart/items/{id}", s.handleSetQuantity)
	mux.HandleFunc("DELETE /cart/items/{id}", s.handleRemoveFromCart)

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	// Customer area.
	mux.HandleFunc("POST /checkout", s.withGate(gate.UserArea, s.handleCheckout))
	mux.HandleFunc("POST /checkout/payment-intent", s.withGate(gate.UserArea, s.handlePaymentIntent))
	mux.HandleFunc("GET /orders/mine", s.withGate(gate.UserArea, s.handleMyOrders))

	// Admin area.
	mux.HandleFunc("POST /admin/products", s.withGate(gate.AdminOnly, s.handleCreateProduct))
	mux.HandleFunc("PUT /admin/products/{id}", s.withGate(gate.AdminOnly, s.handleUpdateProduct))
	mux.HandleFunc("DELETE /admin/products/{id}", s.withGate(gate.AdminOnly, s.handleDeleteProduct))
	mux.HandleFunc("GET /admin/stats", s.withGate(gate.AdminOnly, s.handleStats))
	mux.HandleFunc("GET /admin/orders", s.withGate(gate.AdminOnly, s.handleListOrders))
	mux.HandleFunc("GET /admin/orders/{id}", s.withGate(gate.AdminOnly, s.handleGetOrder))
	mux.HandleFunc("PUT /admin/orders/{id}/status", s.withGate(gate.AdminOnly, s.handleUpdateOrderStatus))

	return mux
}
