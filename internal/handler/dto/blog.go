// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/stats"
)

// CreateBlogRequest represents the request body for creating a blog.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes,omitempty"`
}

// UpdateBlogRequest represents the request body for updating a blog's
// like count.
type UpdateBlogRequest struct {
	Likes *int `json:"likes"`
}

// UserRefResponse is the owner projection embedded in blog responses.
type UserRefResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// BlogResponse represents a blog in API responses. Identifiers are always
// exposed under "id"; the store's internal field name never leaks.
type BlogResponse struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Author string           `json:"author,omitempty"`
	URL    string           `json:"url"`
	Likes  int              `json:"likes"`
	User   *UserRefResponse `json:"user,omitempty"`
}

// StatsResponse aggregates list-level blog statistics.
type StatsResponse struct {
	Blogs      int                `json:"blogs"`
	TotalLikes int                `json:"total_likes"`
	Favorite   *BlogResponse      `json:"favorite,omitempty"`
	MostBlogs  *stats.AuthorBlogs `json:"most_blogs,omitempty"`
	MostLikes  *stats.AuthorLikes `json:"most_likes,omitempty"`
}

// ToBlogResponse converts a Blog model to BlogResponse DTO.
func ToBlogResponse(blog *model.Blog) *BlogResponse {
	resp := &BlogResponse{
		ID:     blog.ID.Hex(),
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
	}
	if blog.Owner != nil {
		resp.User = &UserRefResponse{
			ID:       blog.Owner.ID.Hex(),
			Username: blog.Owner.Username,
			Name:     blog.Owner.Name,
		}
	}
	return resp
}

// ToBlogListResponse converts a slice of Blog models to response DTOs.
func ToBlogListResponse(blogs []model.Blog) []BlogResponse {
	responses := make([]BlogResponse, len(blogs))
	for i := range blogs {
		responses[i] = *ToBlogResponse(&blogs[i])
	}
	return responses
}
