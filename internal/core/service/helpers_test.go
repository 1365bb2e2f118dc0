package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
)

// steppingClock advances one second per call so creation times are distinct
// and ordered.
func steppingClock() func() time.Time {
	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newAuth(store *memory.Store) *AuthService {
	return NewAuthService(store.Users(), NewPasswordHasher(bcrypt.MinCost), NewTokenService("secret"), time.Minute, zerolog.Nop())
}

func mustRegister(t *testing.T, auth *AuthService, email string) *domain.User {
	t.Helper()
	user, err := auth.Register(context.Background(), ports.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Company:  "Acme Exports",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func mustCreateOrder(t *testing.T, orders *OrderService, userID string) *domain.Order {
	t.Helper()
	order, err := orders.Create(context.Background(), userID, ports.CreateOrderInput{
		ProductCategory:    "spices",
		ProductDescription: "Black pepper, 50kg bags",
		Quantity:           "200",
		DestinationCountry: "DE",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
