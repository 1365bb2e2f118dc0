package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
)

func strPtr(s string) *string { return &s }

func TestAuthService_RegisterAndLogin(t *testing.T) {
	store := memory.NewStore()
	auth := newAuth(store)

	user := mustRegister(t, auth, "  Alice@Example.COM ")
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if !user.IsActive || user.ID == "" || user.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret" {
		t.Fatalf("password not hashed")
	}

	token, err := auth.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.TokenType != "bearer" || token.Token == "" {
		t.Fatalf("unexpected token: %+v", token)
	}

	sub, err := auth.tokens.Verify(token.Token)
	if err != nil || sub != "alice@example.com" {
		t.Fatalf("token subject %q, err %v", sub, err)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	auth := newAuth(memory.NewStore())
	mustRegister(t, auth, "bob@example.com")

	_, err := auth.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "BOB@example.com", Company: "B", Password: "x",
	})
	if !errors.Is(err, domain.ErrUserExists) || !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	auth := newAuth(memory.NewStore())

	_, err := auth.Register(context.Background(), ports.RegisterInput{Email: "a@b.c", Password: "x"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing fields, got %v", err)
	}

	_, err = auth.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "a@b.c", Company: "C", Password: strings.Repeat("p", 80),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for long password, got %v", err)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	auth := newAuth(memory.NewStore())
	mustRegister(t, auth, "carol@example.com")

	_, wrongPassword := auth.Login(context.Background(), "carol@example.com", "nope")
	_, unknownEmail := auth.Login(context.Background(), "nobody@example.com", "s3cret")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) || !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	store := memory.NewStore()
	auth := newAuth(store)
	user := mustRegister(t, auth, "dave@example.com")
	if err := store.SetActive(user.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	token, err := auth.Login(context.Background(), "dave@example.com", "s3cret")
	if !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}
	if token != nil {
		t.Fatalf("expected no token, got %+v", token)
	}

	// a wrong password still reads as bad credentials
	_, err = auth.Login(context.Background(), "dave@example.com", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	store := memory.NewStore()
	auth := newAuth(store)
	user := mustRegister(t, auth, "dave@example.com")

	updated, err := auth.UpdateProfile(context.Background(), user, domain.UserUpdate{Phone: strPtr("+49 30 1234")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone == nil || *updated.Phone != "+49 30 1234" {
		t.Fatalf("phone not updated: %+v", updated.Phone)
	}
	if updated.Name != user.Name || updated.Email != user.Email {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	profile, err := auth.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Phone == nil || *profile.Phone != "+49 30 1234" {
		t.Fatalf("profile does not reflect update")
	}

	same, err := auth.UpdateProfile(context.Background(), user, domain.UserUpdate{})
	if err != nil || same.ID != user.ID {
		t.Fatalf("empty update should return the user unchanged: %v", err)
	}
}
