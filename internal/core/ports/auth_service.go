package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Company  string
	Phone    *string
	Address  *string
	Password string
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token     string
	TokenType string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*AccessToken, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, upd domain.UserUpdate) (*domain.User, error)
}

// Authenticator turns a bearer token into an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
