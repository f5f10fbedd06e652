package database

import (
	"context"
	"fmt"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient wraps a connected MongoDB client and its database handle
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
}

// NewMongoClient connects to MongoDB and pings the primary
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		client:   client,
		database: client.Database(config.Database),
		timeout:  timeout,
	}, nil
}

// Database returns the configured database handle
func (m *MongoClient) Database() *mongo.Database {
	return m.database
}

// Ping checks the connection to the primary
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
