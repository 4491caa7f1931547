package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bloglist/bloglist/internal/auth"
	"github.com/bloglist/bloglist/internal/handler/dto"
	"github.com/bloglist/bloglist/internal/metrics"
	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/repository"
)

// minCredentialLength applies to both usernames and plaintext passwords.
const minCredentialLength = 3

// UserHandler handles HTTP requests for user registration and listing.
type UserHandler struct {
	store   UserStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore, logger *slog.Logger, recorder metrics.Recorder) *UserHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserHandler{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Username) < minCredentialLength {
		writeError(w, http.StatusBadRequest, "username must be at least 3 characters long")
		return
	}
	if len(req.Password) < minCredentialLength {
		writeError(w, http.StatusBadRequest, "password must be at least 3 characters long")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &model.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			writeError(w, http.StatusBadRequest, "username must be unique")
			return
		}
		h.logger.Error("failed to create user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user_registered",
		"user_id", user.ID.Hex(),
		"username", user.Username,
	)
	h.metrics.IncUserRegistered()

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// List handles GET /api/users. Returns public projections with owned
// blogs embedded.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}
