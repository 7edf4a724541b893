package rest

import (
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/internal/auth/gate"
)

type gateBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo"`
	From       string `json:"from,omitempty"`
}

// withGate evaluates the access gate for the request's session before
// calling next. Denials carry the gate's redirect target so a client can
// reproduce the storefront's navigation behavior.
func (s *Server) withGate(class gate.RouteClass, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFrom(r)

		d := gate.Decide(sess, class)
		if d.Allow {
			next(w, r)
			return
		}

		body := gateBody{RedirectTo: d.RedirectTo}
		status := http.StatusForbidden
		body.Code = "FORBIDDEN"
		body.Message = "not allowed"
		if sess == nil {
			status = http.StatusUnauthorized
			body.Code = "UNAUTHENTICATED"
			body.Message = "login required"
		}
		if d.CaptureFrom {
			body.From = r.URL.Path
		}
		writeJSON(w, status, body)
	}
}

// sessionFrom parses the bearer token, if any. Invalid or missing tokens
// mean anonymous; authorization failures are the gate's call, not ours.
func (s *Server) sessionFrom(r *http.Request) *domain.Session {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil
	}

	sess, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return &sess
}
