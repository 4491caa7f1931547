// Package auth provides token issuance, password hashing and request
// identity plumbing.
package auth

import (
	"context"

	"github.com/bloglist/bloglist/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// tokenContextKey holds the candidate bearer token.
	tokenContextKey contextKey = "bearer_token"
	// userContextKey holds the resolved authenticated user.
	userContextKey contextKey = "current_user"
)

// ContextWithToken stores the candidate bearer token in the context.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the candidate bearer token.
// Returns "" when the request carried none.
func TokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(tokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}

// ContextWithUser stores the authenticated user in the context.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user.
// Returns nil if the request is unauthenticated.
func UserFromContext(ctx context.Context) *model.User {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}
