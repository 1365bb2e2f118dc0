package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. The unique
// email index is what turns a registration race into domain.ErrUserExists.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byCollection := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionOrders: {
			{Keys: bson.D{{Key: fieldUserID, Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: fieldUserID, Value: 1}, {Key: "status", Value: 1}}},
		},
		collectionDocuments: {
			{Keys: bson.D{{Key: fieldUserID, Value: 1}, {Key: "order_id", Value: 1}, {Key: "uploaded_at", Value: -1}}},
		},
		collectionMessages: {
			{Keys: bson.D{{Key: fieldUserID, Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: fieldUserID, Value: 1}, {Key: "is_read", Value: 1}}},
		},
		collectionStatusChecks: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}

	for name, models := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
