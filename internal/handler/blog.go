package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloglist/bloglist/internal/auth"
	"github.com/bloglist/bloglist/internal/handler/dto"
	"github.com/bloglist/bloglist/internal/metrics"
	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/repository"
	"github.com/bloglist/bloglist/internal/stats"
)

// BlogHandler handles HTTP requests for blog operations.
type BlogHandler struct {
	store   BlogStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(store BlogStore, logger *slog.Logger, recorder metrics.Recorder) *BlogHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BlogHandler{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// List handles GET /api/blogs. Readable by anyone, owner embedded.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.store.ListBlogs(r.Context())
	if err != nil {
		h.logger.Error("failed to list blogs", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlogListResponse(blogs))
}

// Create handles POST /api/blogs. Requires an authenticated caller; the
// created blog is owned by the caller.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "title or url missing")
		return
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}
	if likes < 0 {
		writeError(w, http.StatusBadRequest, "likes must not be negative")
		return
	}

	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	blog := &model.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: user.ID,
	}

	if err := h.store.CreateBlog(r.Context(), blog); err != nil {
		h.logger.Error("failed to create blog", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("blog_created",
		"blog_id", blog.ID.Hex(),
		"user_id", user.ID.Hex(),
	)
	h.metrics.IncBlogCreated()

	writeJSON(w, http.StatusCreated, dto.ToBlogResponse(blog))
}

// Update handles PUT /api/blogs/{id}. Only the like count is writable, and
// any authenticated caller may change it; this is deliberately permissive.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}

	var req dto.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Likes == nil {
		writeError(w, http.StatusBadRequest, "likes missing")
		return
	}
	if *req.Likes < 0 {
		writeError(w, http.StatusBadRequest, "likes must not be negative")
		return
	}

	blog, err := h.store.UpdateBlogLikes(r.Context(), id, *req.Likes)
	if errors.Is(err, repository.ErrBlogNotFound) {
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update blog", "error", err, "blog_id", id.Hex())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("blog_updated", "blog_id", blog.ID.Hex(), "likes", blog.Likes)
	h.metrics.IncBlogUpdated()

	writeJSON(w, http.StatusOK, dto.ToBlogResponse(blog))
}

// Delete handles DELETE /api/blogs/{id}. Only the creator may delete, and
// deleting an already absent blog still reports success.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	blog, err := h.store.GetBlog(r.Context(), id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.logger.Error("failed to get blog", "error", err, "blog_id", id.Hex())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if blog.UserID != user.ID {
		writeError(w, http.StatusForbidden, "only the creator may delete a blog")
		return
	}

	if err := h.store.DeleteBlog(r.Context(), id); err != nil {
		h.logger.Error("failed to delete blog", "error", err, "blog_id", id.Hex())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("blog_deleted", "blog_id", id.Hex(), "user_id", user.ID.Hex())
	h.metrics.IncBlogDeleted()

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/blogs/stats.
func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.store.ListBlogs(r.Context())
	if err != nil {
		h.logger.Error("failed to list blogs", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := dto.StatsResponse{
		Blogs:      len(blogs),
		TotalLikes: stats.TotalLikes(blogs),
		MostBlogs:  stats.MostBlogs(blogs),
		MostLikes:  stats.MostLikes(blogs),
	}
	if favorite := stats.FavoriteBlog(blogs); favorite != nil {
		resp.Favorite = dto.ToBlogResponse(favorite)
	}

	writeJSON(w, http.StatusOK, resp)
}
