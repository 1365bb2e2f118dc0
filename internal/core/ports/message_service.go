package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

type SendMessageInput struct {
	OrderID *string
	Subject string
	Content string
}

type MessageService interface {
	Send(ctx context.Context, userID string, in SendMessageInput) (*domain.Message, error)
	List(ctx context.Context, userID string) ([]*domain.Message, error)
	MarkRead(ctx context.Context, userID, messageID string) error
}
