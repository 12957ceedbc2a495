package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Store wraps the MongoDB client holding the posts and comments
// collections.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

func New(ctx context.Context, mongoURL string, databaseName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	slog.Info("document store connected", "database", databaseName)
	return &Store{client: client, database: client.Database(databaseName)}, nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.database.Collection(name)
}

func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
