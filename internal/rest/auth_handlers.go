package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/auth/gate"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// From is the destination captured before a login redirect, if any.
	From string `json:"from,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed body"})
		return
	}

	if err := s.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed body"})
		return
	}

	sess, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}

	token, err := s.tokens.Issue(sess)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Token      string `json:"token"`
		Username   string `json:"username"`
		Role       string `json:"role"`
		RedirectTo string `json:"redirectTo"`
	}{token, sess.Username, string(sess.Role), gate.PostLoginTarget(sess, req.From)})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context()); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
