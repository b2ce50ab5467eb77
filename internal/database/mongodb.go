// Package database provides database connection and management.
package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB holds the database connection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	log      *logrus.Logger
}

// NewMongoDB creates a new MongoDB connection and verifies it with a ping.
func NewMongoDB(uri, dbName string, logger *logrus.Logger) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatalf("Failed to ping MongoDB: %v", err)
	}

	logger.WithField("database", dbName).Info("connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
		log:      logger,
	}
}

// Close disconnects from MongoDB.
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		m.log.WithError(err).Error("error disconnecting from MongoDB")
		return
	}
	m.log.Info("disconnected from MongoDB")
}

// Collection returns a collection from the database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}
