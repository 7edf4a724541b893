package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
)

func TestHTTPStatusFromErr(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantStr  string
	}{
		{"catalog not found -> 404", catalogapp.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"order not found -> 404", orderapp.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"product gone mid-quote -> 404", checkoutapp.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid input -> 400", catalogapp.ErrInvalidInput, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"invalid status -> 400", orderapp.ErrInvalidStatus, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"empty order -> 400", orderapp.ErrEmptyOrder, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"exceeds stock -> 409", checkoutapp.ErrExceedsStock, http.StatusConflict, "CONFLICT"},
		{"username taken -> 409", authapp.ErrUsernameTaken, http.StatusConflict, "CONFLICT"},
		{"bad credentials -> 401", authapp.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"wrapped error keeps mapping", fmt.Errorf("load: %w", orderapp.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unknown -> 500", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := httpStatusFromErr(tc.err)
			if status != tc.wantCode || code != tc.wantStr {
				t.Fatalf("httpStatusFromErr(%v) = (%d, %q), want (%d, %q)", tc.err, status, code, tc.wantCode, tc.wantStr)
			}
		})
	}
}

func TestWriteErrHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeErr(rec, errors.New("pq: connection refused"))

	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "internal error" {
		t.Fatalf("message = %q, leaked internals", body.Message)
	}
}

func TestWriteErrKeepsProcessingMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeErr(rec, fmt.Errorf("save: %w", orderapp.ErrProcessing))

	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != orderapp.ErrProcessing.Error() {
		t.Fatalf("message = %q, want the user-facing processing message", body.Message)
	}
}
