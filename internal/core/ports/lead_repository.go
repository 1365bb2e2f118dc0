package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// MaxListStatusChecks caps the legacy status-check listing.
const MaxListStatusChecks = 1000

// LeadRepository stores public form submissions. Leads are write-only.
type LeadRepository interface {
	CreateContact(ctx context.Context, form *domain.ContactForm) error
	CreateQuote(ctx context.Context, form *domain.QuoteForm) error
}

// StatusCheckRepository stores legacy status-check pings.
type StatusCheckRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}
