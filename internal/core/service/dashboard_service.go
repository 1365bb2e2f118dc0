package service

import (
	"context"
	"fmt"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

type DashboardService struct {
	orders   ports.OrderRepository
	messages ports.MessageRepository
}

func NewDashboardService(orders ports.OrderRepository, messages ports.MessageRepository) *DashboardService {
	return &DashboardService{orders: orders, messages: messages}
}

// Stats runs four independent counts over the caller's own records.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	var (
		stats domain.DashboardStats
		err   error
	)
	if stats.TotalOrders, err = s.orders.CountOwned(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard: total orders: %w", err)
	}
	if stats.ActiveOrders, err = s.orders.CountOwned(ctx, userID, domain.ActiveOrderStatuses...); err != nil {
		return nil, fmt.Errorf("dashboard: active orders: %w", err)
	}
	if stats.CompletedOrders, err = s.orders.CountOwned(ctx, userID, domain.OrderDelivered); err != nil {
		return nil, fmt.Errorf("dashboard: completed orders: %w", err)
	}
	if stats.UnreadMessages, err = s.messages.CountUnread(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard: unread messages: %w", err)
	}
	return &stats, nil
}
