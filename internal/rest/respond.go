package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// httpStatusFromErr maps domain errors onto HTTP statuses and stable error
// codes; everything unrecognized is an internal error.
func httpStatusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound),
		errors.Is(err, checkoutapp.ErrProductNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidStatus),
		errors.Is(err, orderapp.ErrEmptyOrder),
		errors.Is(err, authapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, checkoutapp.ErrExceedsStock),
		errors.Is(err, authapp.ErrUsernameTaken):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, authapp.ErrInvalidCredentials):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeErr(w http.ResponseWriter, err error) {
	status, code := httpStatusFromErr(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		// ErrProcessing carries the one user-facing message; anything
		// else stays opaque.
		if errors.Is(err, orderapp.ErrProcessing) {
			msg = orderapp.ErrProcessing.Error()
		} else {
			msg = "internal error"
		}
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}
