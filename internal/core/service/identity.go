package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// TokenVerifier extracts the subject from a signed token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// IdentityResolver maps bearer tokens to stored users. It fails closed: an
// invalid token and an unknown subject produce the same error.
type IdentityResolver struct {
	tokens TokenVerifier
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewIdentityResolver(tokens TokenVerifier, users ports.UserRepository, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users, log: log}
}

// Resolve returns the user named by token.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	email, err := r.tokens.Verify(token)
	if err != nil {
		r.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.log.Debug().Str("subject", email).Msg("token subject has no account")
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}

// RequireActive rejects deactivated accounts.
func (r *IdentityResolver) RequireActive(user *domain.User) (*domain.User, error) {
	if user == nil || !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}

// Authenticate resolves token and requires the account to be active.
func (r *IdentityResolver) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	user, err := r.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return r.RequireActive(user)
}
