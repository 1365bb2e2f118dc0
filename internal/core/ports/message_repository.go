package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

const MaxListMessages = 100

// MessageRepository persists user messages, scoped by owning user.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListOwned(ctx context.Context, userID string, limit int) ([]*domain.Message, error)
	// MarkRead sets the read flag. Returns domain.ErrMessageNotFound when the
	// message does not exist under userID.
	MarkRead(ctx context.Context, userID, messageID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}
