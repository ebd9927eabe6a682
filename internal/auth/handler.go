package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mahiganga/marketplace-backend/internal/models"
	"github.com/mahiganga/marketplace-backend/internal/store"
)

// UserStore defines the interface for user lookup.
type UserStore interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// Handler holds the login HTTP handler.
type Handler struct {
	users UserStore
}

func NewHandler(users UserStore) *Handler {
	return &Handler{users: users}
}

// Login checks a credential pair by exact equality. No session or token is
// issued; the client only learns whether the pair matched.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUser(r.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil || user.Password != req.Password {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.LoginResponse{Success: false, Message: "Invalid credentials"})
		return
	}
	json.NewEncoder(w).Encode(models.LoginResponse{Success: true, Message: "Login successful"})
}
