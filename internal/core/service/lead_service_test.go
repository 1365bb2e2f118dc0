package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/expotrade/client-portal/internal/core/ports"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
)

func TestLeadService_Submit(t *testing.T) {
	store := memory.NewStore()
	leads := NewLeadService(store.Leads(), zerolog.Nop())

	contact, err := leads.SubmitContact(context.Background(), ports.ContactInput{
		Name: "Gina", Email: " Gina@Example.com", Message: "Call me",
	})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if contact.Email != "gina@example.com" || contact.ID == "" {
		t.Fatalf("unexpected contact: %+v", contact)
	}

	urgency := "high"
	quote, err := leads.SubmitQuote(context.Background(), ports.QuoteInput{
		Name: "Hal", Company: "H&Co", Email: "hal@example.com", Phone: "1",
		ProductCategory: "textiles", ProductDescription: "cotton", DestinationCountry: "US",
		Quantity: "1000", Urgency: &urgency,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.Urgency == nil || *quote.Urgency != "high" || quote.MOQ != nil {
		t.Fatalf("optional fields not carried: %+v", quote)
	}

	if store.ContactCount() != 1 || store.QuoteCount() != 1 {
		t.Fatalf("expected one of each lead, got %d contacts %d quotes", store.ContactCount(), store.QuoteCount())
	}
}

func TestStatusService_RecordList(t *testing.T) {
	store := memory.NewStore()
	svc := NewStatusService(store.StatusChecks())
	svc.now = steppingClock()

	for _, name := range []string{"a", "b"} {
		if _, err := svc.Record(context.Background(), name); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(list))
	}
}
