package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloglist/bloglist/internal/auth"
	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/repository"
)

var userTestSecret = []byte("user-extractor-secret")

type fakeResolver struct {
	users map[primitive.ObjectID]*model.User
	err   error
}

func (r *fakeResolver) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func newExtractor(resolver *fakeResolver) func(http.Handler) http.Handler {
	return UserExtractor(UserExtractorConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Secret: userTestSecret,
		Store:  resolver,
	})
}

func runExtractor(t *testing.T, resolver *fakeResolver, header string) (*httptest.ResponseRecorder, *model.User) {
	t.Helper()

	var resolved *model.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := TokenExtractor(newExtractor(resolver)(inner))

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, resolved
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp["error"]
}

func TestUserExtractor_MissingToken(t *testing.T) {
	t.Parallel()

	rec, _ := runExtractor(t, &fakeResolver{}, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "token missing" {
		t.Errorf("error = %q, want %q", got, "token missing")
	}
}

func TestUserExtractor_MalformedToken(t *testing.T) {
	t.Parallel()

	rec, _ := runExtractor(t, &fakeResolver{}, "Bearer not.a.jwt")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "invalid token" {
		t.Errorf("error = %q, want %q", got, "invalid token")
	}
}

func TestUserExtractor_WrongSigningKey(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: primitive.NewObjectID(), Username: "mlukkai"}
	token, err := auth.GenerateToken(user, []byte("some-other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rec, _ := runExtractor(t, &fakeResolver{}, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "invalid token" {
		t.Errorf("error = %q, want %q", got, "invalid token")
	}
}

func TestUserExtractor_UnknownUser(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: primitive.NewObjectID(), Username: "ghost"}
	token, err := auth.GenerateToken(user, userTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rec, _ := runExtractor(t, &fakeResolver{}, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "token invalid" {
		t.Errorf("error = %q, want %q", got, "token invalid")
	}
}

func TestUserExtractor_ValidToken(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: primitive.NewObjectID(), Username: "mlukkai", Name: "Matti Lukkainen"}
	resolver := &fakeResolver{users: map[primitive.ObjectID]*model.User{user.ID: user}}

	token, err := auth.GenerateToken(user, userTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rec, resolved := runExtractor(t, resolver, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if resolved == nil {
		t.Fatal("user not injected into the request context")
	}
	if resolved.ID != user.ID || resolved.Username != "mlukkai" {
		t.Errorf("resolved = %+v, want the seeded account", resolved)
	}
}
