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

// LeadService records contact and quote submissions from the public site.
type LeadService struct {
	repo ports.LeadRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewLeadService(repo ports.LeadRepository, log zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, log: log, now: time.Now}
}

func (s *LeadService) SubmitContact(ctx context.Context, in ports.ContactInput) (*domain.ContactForm, error) {
	form := &domain.ContactForm{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     NormalizeEmail(in.Email),
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateContact(ctx, form); err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	s.log.Info().Str("lead_id", form.ID).Str("form", "contact").Msg("lead received")
	return form, nil
}

func (s *LeadService) SubmitQuote(ctx context.Context, in ports.QuoteInput) (*domain.QuoteForm, error) {
	form := &domain.QuoteForm{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Company:             in.Company,
		Email:               NormalizeEmail(in.Email),
		Phone:               in.Phone,
		ProductCategory:     in.ProductCategory,
		ProductDescription:  in.ProductDescription,
		DestinationCountry:  in.DestinationCountry,
		Quantity:            in.Quantity,
		MOQ:                 in.MOQ,
		Urgency:             in.Urgency,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           s.now().UTC(),
	}
	if err := s.repo.CreateQuote(ctx, form); err != nil {
		return nil, fmt.Errorf("submit quote: %w", err)
	}
	s.log.Info().Str("lead_id", form.ID).Str("form", "quote").Str("destination", form.DestinationCountry).Msg("lead received")
	return form, nil
}

// StatusService backs the legacy status-check endpoints.
type StatusService struct {
	repo ports.StatusCheckRepository
	now  func() time.Time
}

func NewStatusService(repo ports.StatusCheckRepository) *StatusService {
	return &StatusService{repo: repo, now: time.Now}
}

func (s *StatusService) Record(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("record status check: %w", err)
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]*domain.StatusCheck, error) {
	return s.repo.List(ctx, ports.MaxListStatusChecks)
}
