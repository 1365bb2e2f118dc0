package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

type stubDocumentService struct {
	uploadFn   func(ctx context.Context, userID string, in ports.UploadDocumentInput) (*domain.Document, error)
	listFn     func(ctx context.Context, userID, orderID string) ([]*domain.Document, error)
	downloadFn func(ctx context.Context, userID, documentID string) (*domain.Document, error)
}

func (s *stubDocumentService) Upload(ctx context.Context, userID string, in ports.UploadDocumentInput) (*domain.Document, error) {
	return s.uploadFn(ctx, userID, in)
}

func (s *stubDocumentService) ListForOrder(ctx context.Context, userID, orderID string) ([]*domain.Document, error) {
	return s.listFn(ctx, userID, orderID)
}

func (s *stubDocumentService) Download(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	return s.downloadFn(ctx, userID, documentID)
}

func TestDocumentHandler_Upload(t *testing.T) {
	e := newTestEcho()
	handler := NewDocumentHandler(&stubDocumentService{
		uploadFn: func(ctx context.Context, userID string, in ports.UploadDocumentInput) (*domain.Document, error) {
			if userID != "u1" || in.DocumentType != domain.DocumentPackingList || in.FileData != "aGVsbG8=" {
				t.Fatalf("unexpected input: %s %+v", userID, in)
			}
			return &domain.Document{
				ID: "d1", OrderID: in.OrderID, UserID: userID, DocumentType: in.DocumentType,
				Filename: in.Filename, FileData: in.FileData, FileSize: in.FileSize, MimeType: in.MimeType,
				UploadedAt: time.Now(),
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/documents",
		`{"order_id":"o1","document_type":"packing_list","filename":"pl.pdf","file_data":"aGVsbG8=","file_size":5,"mime_type":"application/pdf"}`), rec)
	c.Set("user", &domain.User{ID: "u1"})

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "d1" || resp["document_type"] != "packing_list" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, ok := resp["file_data"]; ok {
		t.Fatalf("metadata response must not carry the payload")
	}
}

func TestDocumentHandler_UploadValidation(t *testing.T) {
	cases := map[string]string{
		"unknown type":  `{"order_id":"o1","document_type":"selfie","filename":"a","file_data":"aGVsbG8=","mime_type":"x"}`,
		"not base64":    `{"order_id":"o1","document_type":"invoice","filename":"a","file_data":"%%%","mime_type":"x"}`,
		"negative size": `{"order_id":"o1","document_type":"invoice","filename":"a","file_data":"aGVsbG8=","file_size":-1,"mime_type":"x"}`,
		"missing order": `{"document_type":"invoice","filename":"a","file_data":"aGVsbG8=","mime_type":"x"}`,
	}
	for name, body := range cases {
		e := newTestEcho()
		handler := NewDocumentHandler(&stubDocumentService{
			uploadFn: func(ctx context.Context, userID string, in ports.UploadDocumentInput) (*domain.Document, error) {
				t.Fatalf("%s: service should not be called", name)
				return nil, nil
			},
		})
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/documents", body), httptest.NewRecorder())
		c.Set("user", &domain.User{ID: "u1"})

		if err := handler.Upload(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestDocumentHandler_Download(t *testing.T) {
	e := newTestEcho()
	handler := NewDocumentHandler(&stubDocumentService{
		downloadFn: func(ctx context.Context, userID, documentID string) (*domain.Document, error) {
			if documentID != "d1" {
				return nil, domain.ErrDocumentNotFound
			}
			return &domain.Document{ID: "d1", Filename: "a.pdf", FileData: "aGVsbG8=", MimeType: "application/pdf"}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/documents/d1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("d1")
	c.Set("user", &domain.User{ID: "u1"})

	if err := handler.Download(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"file_data":"aGVsbG8="`) || !strings.Contains(body, `"filename":"a.pdf"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}
