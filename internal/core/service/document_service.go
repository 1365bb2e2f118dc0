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

type DocumentService struct {
	docs   ports.DocumentRepository
	orders ports.OrderRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewDocumentService(docs ports.DocumentRepository, orders ports.OrderRepository, log zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, orders: orders, log: log, now: time.Now}
}

// Upload attaches a document to one of the caller's orders. Nothing is stored
// unless the order belongs to userID.
func (s *DocumentService) Upload(ctx context.Context, userID string, in ports.UploadDocumentInput) (*domain.Document, error) {
	if _, err := domain.ParseDocumentType(string(in.DocumentType)); err != nil {
		return nil, err
	}
	if _, err := s.orders.FindOwned(ctx, userID, in.OrderID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:           uuid.NewString(),
		OrderID:      in.OrderID,
		UserID:       userID,
		DocumentType: in.DocumentType,
		Filename:     in.Filename,
		FileData:     in.FileData,
		FileSize:     in.FileSize,
		MimeType:     in.MimeType,
		UploadedAt:   s.now().UTC(),
		Description:  in.Description,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	s.log.Info().
		Str("document_id", doc.ID).
		Str("order_id", doc.OrderID).
		Str("type", string(doc.DocumentType)).
		Int64("size", doc.FileSize).
		Msg("document uploaded")
	return doc, nil
}

// ListForOrder lists documents of an order the caller owns.
func (s *DocumentService) ListForOrder(ctx context.Context, userID, orderID string) ([]*domain.Document, error) {
	if _, err := s.orders.FindOwned(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.docs.ListForOrder(ctx, userID, orderID, ports.MaxListDocuments)
}

func (s *DocumentService) Download(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	return s.docs.FindOwned(ctx, userID, documentID)
}
