package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/expotrade/client-portal/internal/core/domain"
)

type DocumentRepository struct {
	scoped scopedCollection[domain.Document]
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{scoped: scopedCollection[domain.Document]{
		col:      db.Collection(collectionDocuments),
		sortBy:   "uploaded_at",
		notFound: domain.ErrDocumentNotFound,
	}}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	return r.scoped.insert(ctx, d)
}

func (r *DocumentRepository) FindOwned(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	return r.scoped.findOwned(ctx, userID, documentID)
}

func (r *DocumentRepository) ListForOrder(ctx context.Context, userID, orderID string, limit int) ([]*domain.Document, error) {
	return r.scoped.list(ctx, bson.M{fieldUserID: userID, "order_id": orderID}, limit)
}
