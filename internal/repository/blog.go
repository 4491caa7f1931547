package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloglist/bloglist/internal/model"
)

// ErrBlogNotFound indicates the requested blog does not exist.
var ErrBlogNotFound = errors.New("blog not found")

// ownerLookup joins the owning user onto each blog as "owner" and strips
// the credential and blog-list fields from the joined document.
var ownerLookup = mongo.Pipeline{
	{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: usersCollection},
		{Key: "localField", Value: "user"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner"},
	}}},
	{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$owner"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}},
	{{Key: "$project", Value: bson.D{
		{Key: "owner.password_hash", Value: 0},
		{Key: "owner.blogs", Value: 0},
	}}},
}

// ListBlogs returns all blogs with the owner's public fields attached.
func (r *Repository) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	cur, err := r.blogs.Aggregate(ctx, ownerLookup)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer cur.Close(ctx)

	blogs := []model.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// GetBlog returns a single blog without the owner lookup.
func (r *Repository) GetBlog(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	var blog model.Blog
	err := r.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// CreateBlog inserts the blog and appends its id to the owner's blog list.
// The two writes run atomically only in transactional mode; otherwise a
// failure between them leaves the blog saved but unlisted on the owner.
// On success the blog's ID and Owner fields are populated.
func (r *Repository) CreateBlog(ctx context.Context, blog *model.Blog) error {
	owner, err := r.GetUserByID(ctx, blog.UserID)
	if err != nil {
		return err
	}

	blog.ID = primitive.NewObjectID()
	blog.Owner = nil

	err = r.inTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.blogs.InsertOne(ctx, blog); err != nil {
			return fmt.Errorf("failed to insert blog: %w", err)
		}
		_, err := r.users.UpdateByID(ctx, owner.ID, bson.M{"$push": bson.M{"blogs": blog.ID}})
		if err != nil {
			return fmt.Errorf("failed to update owner blog list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	blog.Owner = &model.UserRef{ID: owner.ID, Username: owner.Username, Name: owner.Name}
	return nil
}

// UpdateBlogLikes overwrites the like count and returns the updated blog.
func (r *Repository) UpdateBlogLikes(ctx context.Context, id primitive.ObjectID, likes int) (*model.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	err := r.blogs.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"likes": likes}},
		opts,
	).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return &blog, nil
}

// DeleteBlog removes the blog and pulls its id from the owner's blog list.
// Deleting an absent blog is not an error.
func (r *Repository) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	blog, err := r.GetBlog(ctx, id)
	if errors.Is(err, ErrBlogNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return r.inTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.blogs.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			return fmt.Errorf("failed to delete blog: %w", err)
		}
		if _, err := r.users.UpdateByID(ctx, blog.UserID, bson.M{"$pull": bson.M{"blogs": id}}); err != nil {
			return fmt.Errorf("failed to update owner blog list: %w", err)
		}
		return nil
	})
}
