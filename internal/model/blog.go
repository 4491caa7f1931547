// Package model defines domain entities for the application.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRef is the public projection of a blog's owner.
type UserRef struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	Name     string             `bson:"name,omitempty"`
}

// Blog represents a blog post entity.
// The owner reference is set at creation time and never changes.
type Blog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author,omitempty"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
	UserID primitive.ObjectID `bson:"user,omitempty"`

	// Owner carries the owning user's public fields. It is populated by
	// the repository's owner lookup and is nil on freshly decoded
	// documents that were read without the lookup.
	Owner *UserRef `bson:"owner,omitempty"`
}
