package ports

import (
	"context"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// UserRepository persists portal accounts.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrUserExists when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies the non-nil fields of upd and returns the stored user.
	Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
}
