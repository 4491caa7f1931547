package dto

import "github.com/bloglist/bloglist/internal/model"

// RegisterUserRequest represents the request body for registering a user.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token plus the public identity fields.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// BlogRefResponse is the owned-blog projection embedded in user responses.
type BlogRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Likes int    `json:"likes"`
}

// UserResponse is the public projection of a user. The credential hash is
// never part of the response.
type UserResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name,omitempty"`
	Blogs    []BlogRefResponse `json:"blogs"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	blogs := make([]BlogRefResponse, len(user.OwnedBlogs))
	for i, b := range user.OwnedBlogs {
		blogs[i] = BlogRefResponse{
			ID:    b.ID.Hex(),
			Title: b.Title,
			URL:   b.URL,
			Likes: b.Likes,
		}
	}
	return &UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Name:     user.Name,
		Blogs:    blogs,
	}
}

// ToUserListResponse converts a slice of User models to response DTOs.
func ToUserListResponse(users []model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}
	return responses
}
