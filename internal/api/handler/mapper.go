package handler

import (
	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// --- Request → service input ---

func toRegisterInput(r registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: r.Password,
	}
}

func toUserUpdate(r updateProfileRequest) domain.UserUpdate {
	return domain.UserUpdate{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

func toCreateOrderInput(r createOrderRequest) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		ProductCategory:    r.ProductCategory,
		ProductDescription: r.ProductDescription,
		Quantity:           r.Quantity,
		DestinationCountry: r.DestinationCountry,
		Notes:              r.Notes,
	}
}

// toOrderUpdate runs after validation, so the status is already one of the
// known values; ParseOrderStatus guards the conversion anyway.
func toOrderUpdate(r updateOrderRequest) (domain.OrderUpdate, error) {
	upd := domain.OrderUpdate{
		TrackingNumber:    r.TrackingNumber,
		EstimatedDelivery: r.EstimatedDelivery,
		Notes:             r.Notes,
		TotalAmount:       r.TotalAmount,
	}
	if r.Status != nil {
		st, err := domain.ParseOrderStatus(*r.Status)
		if err != nil {
			return domain.OrderUpdate{}, err
		}
		upd.Status = &st
	}
	return upd, nil
}

func toUploadInput(r uploadDocumentRequest) (ports.UploadDocumentInput, error) {
	dt, err := domain.ParseDocumentType(r.DocumentType)
	if err != nil {
		return ports.UploadDocumentInput{}, err
	}
	return ports.UploadDocumentInput{
		OrderID:      r.OrderID,
		DocumentType: dt,
		Filename:     r.Filename,
		FileData:     r.FileData,
		FileSize:     r.FileSize,
		MimeType:     r.MimeType,
		Description:  r.Description,
	}, nil
}

func toContactInput(r contactRequest) ports.ContactInput {
	return ports.ContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Message: r.Message,
	}
}

func toQuoteInput(r quoteRequest) ports.QuoteInput {
	return ports.QuoteInput{
		Name:                r.Name,
		Company:             r.Company,
		Email:               r.Email,
		Phone:               r.Phone,
		ProductCategory:     r.ProductCategory,
		ProductDescription:  r.ProductDescription,
		DestinationCountry:  r.DestinationCountry,
		Quantity:            r.Quantity,
		MOQ:                 r.MOQ,
		Urgency:             r.Urgency,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Company:   u.Company,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt.UTC(),
		IsActive:  u.IsActive,
	}
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:           d.ID,
		OrderID:      d.OrderID,
		DocumentType: d.DocumentType,
		Filename:     d.Filename,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		UploadedAt:   d.UploadedAt.UTC(),
		Description:  d.Description,
	}
}

func toDocumentResponses(docs []*domain.Document) []documentResponse {
	out := make([]documentResponse, len(docs))
	for i, d := range docs {
		out[i] = toDocumentResponse(d)
	}
	return out
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		OrderID:     m.OrderID,
		MessageType: m.MessageType,
		Subject:     m.Subject,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt.UTC(),
		IsRead:      m.IsRead,
		RepliedTo:   m.RepliedTo,
	}
}

func toMessageResponses(msgs []*domain.Message) []messageResponse {
	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = toMessageResponse(m)
	}
	return out
}
