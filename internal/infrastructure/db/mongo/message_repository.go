package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/expotrade/client-portal/internal/core/domain"
)

type MessageRepository struct {
	scoped scopedCollection[domain.Message]
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{scoped: scopedCollection[domain.Message]{
		col:      db.Collection(collectionMessages),
		sortBy:   "created_at",
		notFound: domain.ErrMessageNotFound,
	}}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.scoped.insert(ctx, m)
}

func (r *MessageRepository) ListOwned(ctx context.Context, userID string, limit int) ([]*domain.Message, error) {
	return r.scoped.list(ctx, bson.M{fieldUserID: userID}, limit)
}

// MarkRead uses UpdateOne rather than updateOwned because the caller only
// needs to know whether the message matched.
func (r *MessageRepository) MarkRead(ctx context.Context, userID, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.scoped.col.UpdateOne(ctx, ownedFilter(userID, messageID), bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	return r.scoped.count(ctx, bson.M{fieldUserID: userID, "is_read": false})
}
