package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/lynlab/accounts/internal/common"
)

// Stable error codes consumers branch on.
const (
	codeDefault           = "AU0000"
	codeDuplicateIdentity = "AU0001"
	codeUnknownAccount    = "AU0011"
	codeWrongCredentials  = "AU0012"
)

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Email          string `json:"email"`
	RedirectionURL string `json:"redirection_url"`
}

type loginRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Services []string `json:"services"`
}

type loginResponse struct {
	AccessToken   string `json:"access_token"`
	FirebaseToken string `json:"firebase_token,omitempty"`
}

type meResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("pong"))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "")
		return
	}

	_, err := s.accounts.Register(r.Context(), req.Username, req.Password, req.Email, req.RedirectionURL)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			badRequest(w, codeDuplicateIdentity)
			return
		}
		s.logger.Error(r.Context(), err.Error())
		internalServerError(w)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", req.Username)
	_, _ = w.Write([]byte("Ok"))
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {

	token := mux.Vars(r)["token"]

	redirect, err := s.accounts.Activate(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			badRequest(w, "")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		internalServerError(w)
		return
	}

	if redirect == "" {
		_, _ = w.Write([]byte("Ok"))
		return
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "")
		return
	}

	result, err := s.accounts.Login(r.Context(), req.Username, req.Password, req.Services)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownAccount):
			unauthorized(w, codeUnknownAccount)
		case errors.Is(err, common.ErrWrongCredentials), errors.Is(err, common.ErrNotActivated):
			// indistinguishable on the wire
			unauthorized(w, codeWrongCredentials)
		default:
			s.logger.Error(r.Context(), err.Error())
			internalServerError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:   result.AccessToken,
		FirebaseToken: result.FirebaseToken,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {

	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w, "")
		return
	}

	identity, err := s.accounts.WhoAmI(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			unauthorized(w, "")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		internalServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:       identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
	})
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// badRequest writes 400 with the given error code; empty codes fall back to
// the default code.
func badRequest(w http.ResponseWriter, code string) {
	writeErrorCode(w, http.StatusBadRequest, code)
}

// unauthorized writes 401 with the given error code; empty codes fall back
// to the default code.
func unauthorized(w http.ResponseWriter, code string) {
	writeErrorCode(w, http.StatusUnauthorized, code)
}

func internalServerError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
}

func writeErrorCode(w http.ResponseWriter, status int, code string) {
	if code == "" {
		code = codeDefault
	}
	writeJSON(w, status, errorResponse{Error: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
