package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglist/bloglist/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
)

// blogLookup joins each user's owned blogs onto the user document.
var blogLookup = mongo.Pipeline{
	{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: blogsCollection},
		{Key: "localField", Value: "blogs"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owned_blogs"},
	}}},
}

// CreateUser inserts a new user. The unique username index turns duplicate
// usernames into ErrUsernameExists, including under concurrent inserts.
// On success the user's ID is populated.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	if user.BlogIDs == nil {
		user.BlogIDs = []primitive.ObjectID{}
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their identifier.
func (r *Repository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by their unique username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// ListUsers returns all users with their owned blogs attached.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := r.users.Aggregate(ctx, blogLookup)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
