// Package repository provides the document store access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	blogsCollection = "blogs"
	usersCollection = "users"
)

// Repository provides document store access methods.
type Repository struct {
	client *mongo.Client
	blogs  *mongo.Collection
	users  *mongo.Collection

	// useTransactions wraps the multi-document writes (blog create and
	// delete touch both collections) in a session transaction. Requires
	// a replica set deployment.
	useTransactions bool
}

// New connects to MongoDB, verifies the connection and ensures indexes.
func New(ctx context.Context, uri, dbName string, useTransactions bool) (*Repository, error) {
	opts := options.Client().ApplyURI(uri).SetMaxPoolSize(10)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	r := &Repository{
		client:          client,
		blogs:           db.Collection(blogsCollection),
		users:           db.Collection(usersCollection),
		useTransactions: useTransactions,
	}

	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return r, nil
}

// ensureIndexes creates the unique username index that backs the
// username uniqueness invariant.
func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// Ping checks store connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the store.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// inTransaction runs fn inside a session transaction when transactional
// mode is enabled, and directly otherwise. The direct path leaves a window
// where the first write is visible before the second lands.
func (r *Repository) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.useTransactions {
		return fn(ctx)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}
