package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// LeadRepository writes public form submissions. Nothing reads them back
// through the API.
type LeadRepository struct {
	contacts *mongo.Collection
	quotes   *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		contacts: db.Collection(collectionContacts),
		quotes:   db.Collection(collectionQuotes),
	}
}

func (r *LeadRepository) CreateContact(ctx context.Context, f *domain.ContactForm) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.contacts.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *LeadRepository) CreateQuote(ctx context.Context, f *domain.QuoteForm) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.quotes.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

type StatusCheckRepository struct {
	col *mongo.Collection
}

func NewStatusCheckRepository(db *mongo.Database) *StatusCheckRepository {
	return &StatusCheckRepository{col: db.Collection(collectionStatusChecks)}
}

func (r *StatusCheckRepository) Create(ctx context.Context, c *domain.StatusCheck) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *StatusCheckRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	out := make([]*domain.StatusCheck, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return out, nil
}
