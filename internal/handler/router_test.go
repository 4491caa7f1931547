package handler

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloglist/bloglist/internal/metrics"
	"github.com/bloglist/bloglist/internal/middleware"
)

var testSecret = []byte("test-secret")

const testTokenTTL = time.Hour

// newTestRouter wires the API surface against the in-memory store, the
// same way the entrypoint wires it against the real repository. Login rate
// limiting and CORS are left out; they have their own coverage.
func newTestRouter(store *fakeStore, recorder metrics.Recorder) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	h := New()
	blogHandler := NewBlogHandler(store, logger, recorder)
	userHandler := NewUserHandler(store, logger, recorder)
	loginHandler := NewLoginHandler(store, testSecret, testTokenTTL, logger, recorder)

	userExtractorCfg := middleware.UserExtractorConfig{
		Logger: logger,
		Secret: testSecret,
		Store:  store,
	}

	r := chi.NewRouter()
	r.Use(middleware.TokenExtractor)

	r.Route("/api", func(r chi.Router) {
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.List)
			r.Get("/stats", blogHandler.Stats)

			r.Group(func(r chi.Router) {
				r.Use(middleware.UserExtractor(userExtractorCfg))
				r.Post("/", blogHandler.Create)
				r.Put("/{id}", blogHandler.Update)
				r.Delete("/{id}", blogHandler.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Register)
		})

		r.Post("/login", loginHandler.Login)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
