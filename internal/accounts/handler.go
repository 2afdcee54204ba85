// Package accounts implements the signup, signin, and user listing
// endpoints.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ayush/agent-registry/internal/api"
	"github.com/ayush/agent-registry/internal/models"
	"github.com/ayush/agent-registry/internal/store"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, password string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

// Handler holds the account HTTP handlers.
type Handler struct {
	users UserStore
	log   *slog.Logger
}

func NewHandler(users UserStore, log *slog.Logger) *Handler {
	return &Handler{users: users, log: log}
}

// Signup creates a new user. Duplicate usernames or emails surface as the
// generic creation failure; the API does not distinguish them.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		api.WriteDetail(w, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.users.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.log.Error("create user failed", "username", req.Username, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to sign up user")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User created successfully",
		"userId":  id,
	})
}

// Signin looks the user up by username and compares the stored password
// byte-for-byte. On success the full record, password included, is echoed
// back; clients depend on that shape.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		api.WriteDetail(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		api.WriteDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error("get user failed", "username", req.Username, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to sign in user")
		return
	}
	if user.Password != req.Password {
		api.WriteDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}

// List returns every user without the password column.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.log.Error("list users failed", "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
