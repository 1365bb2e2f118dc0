package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Collection names.
const (
	collectionUsers        = "users"
	collectionOrders       = "orders"
	collectionDocuments    = "documents"
	collectionMessages     = "messages"
	collectionContacts     = "contacts"
	collectionQuotes       = "quotes"
	collectionStatusChecks = "status_checks"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Store exposes one repository per collection of db.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Users() *UserRepository               { return NewUserRepository(s.db) }
func (s *Store) Orders() *OrderRepository             { return NewOrderRepository(s.db) }
func (s *Store) Documents() *DocumentRepository       { return NewDocumentRepository(s.db) }
func (s *Store) Messages() *MessageRepository         { return NewMessageRepository(s.db) }
func (s *Store) Leads() *LeadRepository               { return NewLeadRepository(s.db) }
func (s *Store) StatusChecks() *StatusCheckRepository { return NewStatusCheckRepository(s.db) }
