package domain

import (
	"fmt"
	"time"
)

// DocumentType tags what a document attachment is.
type DocumentType string

const (
	DocumentInvoice      DocumentType = "invoice"
	DocumentPackingList  DocumentType = "packing_list"
	DocumentShippingDocs DocumentType = "shipping_docs"
	DocumentCertificate  DocumentType = "certificate"
	DocumentOther        DocumentType = "other"
)

var DocumentTypes = []DocumentType{DocumentInvoice, DocumentPackingList, DocumentShippingDocs, DocumentCertificate, DocumentOther}

// ParseDocumentType converts s into a DocumentType, rejecting unknown values.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown document type %q", ErrValidation, s)
}

// Document is a file attached to an order. FileData holds the base64 payload
// inline; documents are immutable once stored.
type Document struct {
	ID           string       `json:"id" bson:"_id"`
	OrderID      string       `json:"order_id" bson:"order_id"`
	UserID       string       `json:"user_id" bson:"user_id"`
	DocumentType DocumentType `json:"document_type" bson:"document_type"`
	Filename     string       `json:"filename" bson:"filename"`
	FileData     string       `json:"file_data" bson:"file_data"`
	FileSize     int64        `json:"file_size" bson:"file_size"`
	MimeType     string       `json:"mime_type" bson:"mime_type"`
	UploadedAt   time.Time    `json:"uploaded_at" bson:"uploaded_at"`
	Description  *string      `json:"description" bson:"description,omitempty"`
}
