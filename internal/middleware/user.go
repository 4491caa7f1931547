package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloglist/bloglist/internal/auth"
	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/repository"
)

// UserResolver resolves a verified token's user id claim to an account.
type UserResolver interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// UserExtractorConfig holds configuration for the user extraction
// middleware.
type UserExtractorConfig struct {
	Logger *slog.Logger
	Secret []byte
	Store  UserResolver
}

// UserExtractor authenticates the request. It requires a candidate bearer
// token, a valid signature and expiry, a user identity claim, and an
// existing account; the resolved user is injected into the request context.
// A token signed for a since-removed account is treated as unauthenticated.
func UserExtractor(cfg UserExtractorConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromContext(r.Context())
			if token == "" {
				writeAuthError(w, "token missing")
				return
			}

			claims, err := auth.ParseToken(token, cfg.Secret)
			if err != nil {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "invalid token")
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_user_claim"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "token invalid")
				return
			}

			user, err := cfg.Store.GetUserByID(r.Context(), userID)
			if errors.Is(err, repository.ErrUserNotFound) {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "unknown_user"),
					slog.String("user_id", claims.UserID),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "token invalid")
				return
			}
			if err != nil {
				cfg.Logger.Error("user lookup failed during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}`))
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError writes a 401 Unauthorized response with the given message.
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
