package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/expotrade/client-portal/internal/core/domain"
)

type OrderRepository struct {
	scoped scopedCollection[domain.Order]
	now    func() time.Time
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		scoped: scopedCollection[domain.Order]{
			col:      db.Collection(collectionOrders),
			sortBy:   "created_at",
			notFound: domain.ErrOrderNotFound,
		},
		now: time.Now,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.scoped.insert(ctx, o)
}

func (r *OrderRepository) FindOwned(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return r.scoped.findOwned(ctx, userID, orderID)
}

func (r *OrderRepository) ListOwned(ctx context.Context, userID string, limit int) ([]*domain.Order, error) {
	return r.scoped.list(ctx, bson.M{fieldUserID: userID}, limit)
}

func (r *OrderRepository) CountOwned(ctx context.Context, userID string, statuses ...domain.OrderStatus) (int64, error) {
	filter := bson.M{fieldUserID: userID}
	switch len(statuses) {
	case 0:
	case 1:
		filter["status"] = statuses[0]
	default:
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.scoped.count(ctx, filter)
}

func (r *OrderRepository) UpdateOwned(ctx context.Context, userID, orderID string, upd domain.OrderUpdate) (*domain.Order, error) {
	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.TrackingNumber != nil {
		set["tracking_number"] = *upd.TrackingNumber
	}
	if upd.EstimatedDelivery != nil {
		set["estimated_delivery"] = upd.EstimatedDelivery.UTC()
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.TotalAmount != nil {
		set["total_amount"] = *upd.TotalAmount
	}
	if len(set) > 0 {
		set["updated_at"] = r.now().UTC()
	}
	return r.scoped.updateOwned(ctx, userID, orderID, set)
}
