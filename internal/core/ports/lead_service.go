package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Message string
}

type QuoteInput struct {
	Name                string
	Company             string
	Email               string
	Phone               string
	ProductCategory     string
	ProductDescription  string
	DestinationCountry  string
	Quantity            string
	MOQ                 *string
	Urgency             *string
	SpecialInstructions *string
}

type LeadService interface {
	SubmitContact(ctx context.Context, in ContactInput) (*domain.ContactForm, error)
	SubmitQuote(ctx context.Context, in QuoteInput) (*domain.QuoteForm, error)
}

type StatusService interface {
	Record(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	List(ctx context.Context) ([]*domain.StatusCheck, error)
}
