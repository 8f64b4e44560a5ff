package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/auth"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

// AuthHandler handles authentication endpoints against the fixed user list.
type AuthHandler struct {
	Users     []model.User
	JWTSecret string
	// Latency is an artificial delay applied to login for UX pacing,
	// matching the storefront's simulated API calls. No retry, no backoff.
	Latency time.Duration
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	if h.Latency > 0 {
		time.Sleep(h.Latency)
	}

	user := auth.Authenticate(h.Users, req.Username, req.Password)
	if user == nil {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.Username, user.Name, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: *user})
}
