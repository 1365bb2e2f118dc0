package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// CreateOrderInput carries the fields of a new order.
type CreateOrderInput struct {
	ProductCategory    string
	ProductDescription string
	Quantity           string
	DestinationCountry string
	Notes              *string
}

type OrderService interface {
	Create(ctx context.Context, userID string, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, userID, orderID string) (*domain.Order, error)
	List(ctx context.Context, userID string) ([]*domain.Order, error)
	Update(ctx context.Context, userID, orderID string, upd domain.OrderUpdate) (*domain.Order, error)
}

// DashboardService computes the per-user dashboard counters.
type DashboardService interface {
	Stats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}
