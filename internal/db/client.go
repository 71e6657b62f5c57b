package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/fulfilld/ordergraph/internal/config"
)

// Connect establishes the MongoDB client and verifies the connection with a
// ping before handing it out.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// Orders returns the orders collection for the configured database.
func Orders(client *mongo.Client, cfg config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
}
