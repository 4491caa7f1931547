// Package model defines domain entities for the application.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// BlogRef is the public projection of an owned blog embedded in user
// listings.
type BlogRef struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
	URL   string             `bson:"url"`
	Likes int                `bson:"likes"`
}

// User represents a registered account. The password is only ever stored
// as a bcrypt hash.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name,omitempty"`
	PasswordHash string               `bson:"password_hash"`
	BlogIDs      []primitive.ObjectID `bson:"blogs"`

	// OwnedBlogs is populated by the repository's blog lookup on user
	// listings.
	OwnedBlogs []BlogRef `bson:"owned_blogs,omitempty"`
}
