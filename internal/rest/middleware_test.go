package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/internal/auth/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Deps{Tokens: NewTokens("test-secret", time.Hour)})
}

func bearerFor(t *testing.T, s *Server, sess domain.Session) string {
	t.Helper()
	token, err := s.tokens.Issue(sess)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGateAnonymousCheckoutCapturesDestination(t *testing.T) {
	s := newGateServer(t)
	called := false
	handler := s.withGate(gate.UserArea, func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body gateBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "UNAUTHENTICATED", body.Code)
	assert.Equal(t, gate.LoginPath, body.RedirectTo)
	assert.Equal(t, "/checkout", body.From)
}

func TestGateInvalidTokenIsAnonymous(t *testing.T) {
	s := newGateServer(t)
	handler := s.withGate(gate.UserArea, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with a bad token")
	})

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateUserAllowedIntoCustomerArea(t *testing.T) {
	s := newGateServer(t)
	called := false
	handler := s.withGate(gate.UserArea, func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set("Authorization", bearerFor(t, s, domain.Session{Username: "user", Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.True(t, called)
}

func TestGateUserRejectedFromAdminArea(t *testing.T) {
	s := newGateServer(t)
	handler := s.withGate(gate.AdminOnly, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without admin role")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", bearerFor(t, s, domain.Session{Username: "user", Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body gateBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, gate.HomePath, body.RedirectTo)
	assert.Empty(t, body.From)
}

func TestGateAdminPushedOutOfCustomerArea(t *testing.T) {
	s := newGateServer(t)
	handler := s.withGate(gate.UserArea, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("admin should be redirected to the dashboard")
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/mine", nil)
	req.Header.Set("Authorization", bearerFor(t, s, domain.Session{Username: "admin", Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body gateBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, gate.AdminPath, body.RedirectTo)
}
