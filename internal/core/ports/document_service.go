package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// UploadDocumentInput carries a new attachment. FileData is base64.
type UploadDocumentInput struct {
	OrderID      string
	DocumentType domain.DocumentType
	Filename     string
	FileData     string
	FileSize     int64
	MimeType     string
	Description  *string
}

type DocumentService interface {
	Upload(ctx context.Context, userID string, in UploadDocumentInput) (*domain.Document, error)
	ListForOrder(ctx context.Context, userID, orderID string) ([]*domain.Document, error)
	Download(ctx context.Context, userID, documentID string) (*domain.Document, error)
}
