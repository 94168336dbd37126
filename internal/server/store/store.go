package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collStatusChecks    = "status_checks"
	collContactMessages = "contact_messages"

	connectTimeout = 10 * time.Second
	opTimeout      = 10 * time.Second

	// listLimit caps every find. The API never pages, so anything past
	// this is unreachable by design.
	listLimit = 1000
)

// Store is the long-lived handle to the document database. It is connected
// once at process start, shared by all requests, and disconnected exactly
// once at shutdown. The mongo client is safe for concurrent use by its own
// contract.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the document database and verifies the connection with a
// ping. A failure here is fatal to the process.
func New(ctx context.Context, uri string, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("store connected", "db", dbName)
	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close releases the connection handle. Called once, at shutdown.
func (s *Store) Close(ctx context.Context) error {
	slog.Info("store disconnect")
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

func (s *Store) statusChecks() *mongo.Collection {
	return s.db.Collection(collStatusChecks)
}

func (s *Store) contactMessages() *mongo.Collection {
	return s.db.Collection(collContactMessages)
}
