package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/luminasalon/backend/internal/config"
)

// Collection names in the document store
const (
	CollectionServices      = "services"
	CollectionProducts      = "products"
	CollectionCustomers     = "customers"
	CollectionStaff         = "staff"
	CollectionVisits        = "visits"
	CollectionInvoices      = "invoices"
	CollectionContent       = "content"
	CollectionAdminUsers    = "admin_users"
	CollectionRefreshTokens = "refresh_tokens"
)

// Mongo wraps the document store client and the application database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to the document store and verifies the connection
func NewConnection(cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Ping verifies the connection is still alive
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the document store
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Collection returns a handle to a named collection
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
