package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// MaxListOrders caps how many orders a single list call returns.
const MaxListOrders = 100

// OrderRepository persists orders. Every read and write is scoped by the
// owning user id; an order owned by someone else is reported as
// domain.ErrOrderNotFound.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindOwned(ctx context.Context, userID, orderID string) (*domain.Order, error)
	// ListOwned returns the newest orders first, at most limit of them.
	ListOwned(ctx context.Context, userID string, limit int) ([]*domain.Order, error)
	// CountOwned counts the user's orders, restricted to statuses when any
	// are given.
	CountOwned(ctx context.Context, userID string, statuses ...domain.OrderStatus) (int64, error)
	UpdateOwned(ctx context.Context, userID, orderID string, upd domain.OrderUpdate) (*domain.Order, error)
}
