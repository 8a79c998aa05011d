// ABOUTME: HTTP endpoints for the identity gateway
// ABOUTME: Exposes POST /auth/register and POST /auth/login returning bearer sessions

package identity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskwell/taskwell/internal/store"
)

// credentialsRequest is the JSON request body for both auth endpoints.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorResponse is the JSON error body for auth endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// API exposes the gateway over HTTP for clients that would otherwise talk
// to a hosted identity provider's SDK.
type API struct {
	gateway *Gateway
	logger  *slog.Logger
}

// NewAPI creates the HTTP layer over an identity gateway.
func NewAPI(gateway *Gateway) *API {
	return &API{
		gateway: gateway,
		logger:  slog.Default().With("component", "identity-api"),
	}
}

// RegisterRoutes registers the auth routes on the given mux
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", a.handleRegister)
	mux.HandleFunc("POST /auth/login", a.handleLogin)
}

// handleRegister handles POST /auth/register
func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	creds, ok := a.decodeCredentials(w, r)
	if !ok {
		return
	}

	session, err := a.gateway.Register(r.Context(), creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		default:
			a.logger.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// handleLogin handles POST /auth/login
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds, ok := a.decodeCredentials(w, r)
	if !ok {
		return
	}

	session, err := a.gateway.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		a.logger.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// decodeCredentials parses the request body, writing a 400 on failure
func (a *API) decodeCredentials(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}
	if creds.Email == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password required"})
		return nil, false
	}
	return &creds, true
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
