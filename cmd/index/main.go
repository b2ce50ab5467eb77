package main

import (
	"context"
	"log"
	"time"

	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logger)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Organizations indexes
	createIndex(ctx, db, "organizations", bson.D{{Key: "slug", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "organizations", bson.D{{Key: "ownerId", Value: 1}}, nil)
	createIndex(ctx, db, "organizations", bson.D{{Key: "deletedAt", Value: 1}}, nil)

	// Memberships indexes
	createIndex(ctx, db, "memberships", bson.D{
		{Key: "orgId", Value: 1},
		{Key: "userId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "memberships", bson.D{{Key: "userId", Value: 1}}, nil)

	// Invitations indexes
	createIndex(ctx, db, "invitations", bson.D{{Key: "token", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "invitations", bson.D{
		{Key: "orgId", Value: 1},
		{Key: "email", Value: 1},
	}, nil)
	createIndex(ctx, db, "invitations", bson.D{{Key: "email", Value: 1}}, nil)
	createIndex(ctx, db, "invitations", bson.D{{Key: "expiresAt", Value: 1}}, nil)

	// Content indexes
	createIndex(ctx, db, "content", bson.D{
		{Key: "orgId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "content", bson.D{{Key: "authorId", Value: 1}}, nil)
	createIndex(ctx, db, "content", bson.D{{Key: "deletedAt", Value: 1}}, nil)

	// Classes indexes
	createIndex(ctx, db, "classes", bson.D{{Key: "orgId", Value: 1}}, nil)
	createIndex(ctx, db, "classes", bson.D{{Key: "roster.userId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
