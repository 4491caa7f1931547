package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bloglist/bloglist/internal/auth"
	"github.com/bloglist/bloglist/internal/handler/dto"
	"github.com/bloglist/bloglist/internal/metrics"
	"github.com/bloglist/bloglist/internal/repository"
)

// LoginHandler handles credential verification and token issuance.
type LoginHandler struct {
	store    UserStore
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(store UserStore, secret []byte, tokenTTL time.Duration, logger *slog.Logger, recorder metrics.Recorder) *LoginHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &LoginHandler{
		store:    store,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
		metrics:  recorder,
	}
}

// Login handles POST /api/login. Unknown usernames and wrong passwords
// fail with the same message so usernames cannot be probed.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		h.logger.Error("failed to look up user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.logger.Warn("login failed", "username", req.Username, "ip", r.RemoteAddr)
		h.metrics.IncLoginFailed()
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("login_succeeded", "user_id", user.ID.Hex(), "username", user.Username)
	h.metrics.IncLoginSucceeded()

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
