package handler

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloglist/bloglist/internal/model"
	"github.com/bloglist/bloglist/internal/repository"
)

// fakeStore is an in-memory stand-in for the repository. It mirrors the
// repository's semantics: owner embedding on reads, blog-list upkeep on
// writes, and the same sentinel errors.
type fakeStore struct {
	mu    sync.Mutex
	blogs []*model.Blog
	users []*model.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// addUser seeds an account directly, bypassing validation.
func (s *fakeStore) addUser(username, name string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &model.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Name:     name,
		BlogIDs:  []primitive.ObjectID{},
	}
	s.users = append(s.users, u)
	return u
}

func (s *fakeStore) findUser(id primitive.ObjectID) *model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *fakeStore) ownerRef(id primitive.ObjectID) *model.UserRef {
	owner := s.findUser(id)
	if owner == nil {
		return nil
	}
	return &model.UserRef{ID: owner.ID, Username: owner.Username, Name: owner.Name}
}

func (s *fakeStore) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		blog := *b
		blog.Owner = s.ownerRef(b.UserID)
		out = append(out, blog)
	}
	return out, nil
}

func (s *fakeStore) GetBlog(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.blogs {
		if b.ID == id {
			blog := *b
			return &blog, nil
		}
	}
	return nil, repository.ErrBlogNotFound
}

func (s *fakeStore) CreateBlog(ctx context.Context, blog *model.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := s.findUser(blog.UserID)
	if owner == nil {
		return repository.ErrUserNotFound
	}

	blog.ID = primitive.NewObjectID()
	stored := *blog
	stored.Owner = nil
	s.blogs = append(s.blogs, &stored)

	owner.BlogIDs = append(owner.BlogIDs, blog.ID)
	blog.Owner = &model.UserRef{ID: owner.ID, Username: owner.Username, Name: owner.Name}
	return nil
}

func (s *fakeStore) UpdateBlogLikes(ctx context.Context, id primitive.ObjectID, likes int) (*model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.blogs {
		if b.ID == id {
			b.Likes = likes
			blog := *b
			return &blog, nil
		}
	}
	return nil, repository.ErrBlogNotFound
}

func (s *fakeStore) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.blogs {
		if b.ID != id {
			continue
		}
		if owner := s.findUser(b.UserID); owner != nil {
			kept := owner.BlogIDs[:0]
			for _, bid := range owner.BlogIDs {
				if bid != id {
					kept = append(kept, bid)
				}
			}
			owner.BlogIDs = kept
		}
		s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
		return nil
	}
	return nil
}

func (s *fakeStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
	}

	user.ID = primitive.NewObjectID()
	if user.BlogIDs == nil {
		user.BlogIDs = []primitive.ObjectID{}
	}
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *fakeStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findUser(id); u != nil {
		user := *u
		return &user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			user := *u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeStore) ListUsers(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		user := *u
		user.OwnedBlogs = nil
		for _, bid := range u.BlogIDs {
			for _, b := range s.blogs {
				if b.ID == bid {
					user.OwnedBlogs = append(user.OwnedBlogs, model.BlogRef{
						ID:    b.ID,
						Title: b.Title,
						URL:   b.URL,
						Likes: b.Likes,
					})
				}
			}
		}
		out = append(out, user)
	}
	return out, nil
}
