package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

const MaxListDocuments = 100

// DocumentRepository persists order attachments, scoped by owning user.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	FindOwned(ctx context.Context, userID, documentID string) (*domain.Document, error)
	// ListForOrder returns the user's documents attached to orderID, newest
	// first, at most limit of them.
	ListForOrder(ctx context.Context, userID, orderID string, limit int) ([]*domain.Document, error)
}
