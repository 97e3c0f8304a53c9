package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Kept in one place so repositories and index
// management never drift apart.
const (
	CollectionAuthors = "authors"
	CollectionBooks   = "books"
	CollectionUsers   = "users"
)

// DBConfig holds the MongoDB connection settings
type DBConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// MongoDB wraps the driver client and manages its lifecycle
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *DBConfig
}

// NewMongoDB creates a MongoDB instance. Connect() must be called
// before the Database field is usable.
func NewMongoDB(config *DBConfig) *MongoDB {
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = 10 * time.Second
	}
	return &MongoDB{
		Config: config,
	}
}

// Connect establishes the connection and verifies it with a ping
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing MongoDB connection...")

	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetMaxPoolSize(db.Config.MaxPoolSize).
		SetConnectTimeout(db.Config.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("mongodb ping failed: %w", err)
	}

	db.Client = client
	db.Database = client.Database(db.Config.Database)

	log.Println("[DATABASE] MongoDB connection established successfully")
	return nil
}

// EnsureIndexes creates the unique indexes the write paths rely on.
// Safe to call on every startup; Mongo treats an existing identical
// index as a no-op.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		CollectionAuthors: {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		CollectionBooks:   {Keys: bson.D{{Key: "title", Value: 1}}, Options: unique},
		CollectionUsers:   {Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	}

	for col, model := range indexes {
		if _, err := db.Database.Collection(col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", col, err)
		}
	}
	return nil
}

// HealthCheck verifies database connectivity. Called by the health
// endpoint.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("database client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
