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

type MessageService struct {
	messages ports.MessageRepository
	orders   ports.OrderRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewMessageService(messages ports.MessageRepository, orders ports.OrderRepository, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, orders: orders, log: log, now: time.Now}
}

// Send stores a user-authored message. A referenced order must belong to the
// sender.
func (s *MessageService) Send(ctx context.Context, userID string, in ports.SendMessageInput) (*domain.Message, error) {
	if in.OrderID != nil {
		if _, err := s.orders.FindOwned(ctx, userID, *in.OrderID); err != nil {
			return nil, err
		}
	}

	msg := &domain.Message{
		ID:          uuid.NewString(),
		UserID:      userID,
		OrderID:     in.OrderID,
		MessageType: domain.MessageUser,
		Subject:     in.Subject,
		Content:     in.Content,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.log.Info().Str("message_id", msg.ID).Str("user_id", userID).Msg("message sent")
	return msg, nil
}

func (s *MessageService) List(ctx context.Context, userID string) ([]*domain.Message, error) {
	return s.messages.ListOwned(ctx, userID, ports.MaxListMessages)
}

func (s *MessageService) MarkRead(ctx context.Context, userID, messageID string) error {
	return s.messages.MarkRead(ctx, userID, messageID)
}
