// Package mongo owns the document-store connection and the repository
// implementations over its collections. The Store is constructed once at
// startup and injected into handler construction.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopdash/shopdash/pkg/config"
	"github.com/shopdash/shopdash/pkg/logger"
)

const (
	usersCollection    = "users"
	cartsCollection    = "carts"
	paymentsCollection = "payments"

	connectTimeout = 10 * time.Second
)

// Store holds the long-lived client and database handle shared by all
// repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to the document store, verifies the connection, and
// ensures the indexes the repositories rely on.
func NewStore(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	log := logger.FromContext(ctx)
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	store := &Store{client: client, db: client.Database(cfg.Name)}
	if err := store.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	log.Info("connected to mongodb", "database", cfg.Name)
	return store, nil
}

// ensureIndexes creates the unique email index that turns racing identical
// registrations into a duplicate-key conflict instead of duplicate records.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}
	return nil
}

// Users returns the user repository.
func (s *Store) Users() *UserRepository {
	return &UserRepository{col: s.db.Collection(usersCollection)}
}

// Payments returns the payment repository.
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{
		client:   s.client,
		payments: s.db.Collection(paymentsCollection),
		carts:    s.db.Collection(cartsCollection),
	}
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
