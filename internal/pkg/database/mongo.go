package database

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient represents a MongoDB client bound to one database
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoClient connects to MongoDB. The driver connects lazily, so a
// reachable server is only verified by the ping; on ping failure the client
// is still returned so the caller can keep serving and report unavailability.
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.URI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	mc := NewMongoClientFrom(client, config.Database)
	if err := mc.Ping(ctx); err != nil {
		return mc, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return mc, nil
}

// NewMongoClientFrom wraps an existing driver client
func NewMongoClientFrom(client *mongo.Client, database string) *MongoClient {
	return &MongoClient{client: client, database: client.Database(database)}
}

// Database returns the configured database handle
func (m *MongoClient) Database() *mongo.Database {
	return m.database
}

// Ping checks that the primary is reachable
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
