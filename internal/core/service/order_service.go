package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log, now: time.Now}
}

// Create numbers the order from the user's current order count and stores it.
// Count and insert are separate operations, so concurrent creates by one user
// may produce the same order number.
func (s *OrderService) Create(ctx context.Context, userID string, in ports.CreateOrderInput) (*domain.Order, error) {
	count, err := s.repo.CountOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create order: count: %w", err)
	}

	now := s.now().UTC()
	order := &domain.Order{
		ID:                 uuid.NewString(),
		UserID:             userID,
		OrderNumber:        domain.OrderNumber(userID, count+1),
		ProductCategory:    in.ProductCategory,
		ProductDescription: in.ProductDescription,
		Quantity:           in.Quantity,
		DestinationCountry: in.DestinationCountry,
		Status:             domain.OrderPending,
		CreatedAt:          now,
		UpdatedAt:          now,
		Notes:              in.Notes,
		Currency:           domain.DefaultCurrency,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info().Str("order_number", order.OrderNumber).Str("user_id", userID).Msg("order created")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return s.repo.FindOwned(ctx, userID, orderID)
}

func (s *OrderService) List(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListOwned(ctx, userID, ports.MaxListOrders)
}

func (s *OrderService) Update(ctx context.Context, userID, orderID string, upd domain.OrderUpdate) (*domain.Order, error) {
	if upd.Status != nil {
		if _, err := domain.ParseOrderStatus(string(*upd.Status)); err != nil {
			return nil, err
		}
	}
	order, err := s.repo.UpdateOwned(ctx, userID, orderID, upd)
	if err != nil {
		return nil, err
	}
	if !upd.IsEmpty() {
		s.log.Info().Str("order_number", order.OrderNumber).Str("status", string(order.Status)).Msg("order updated")
	}
	return order, nil
}
