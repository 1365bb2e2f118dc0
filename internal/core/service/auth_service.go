package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// AuthService implements registration, login and profile updates.
type AuthService struct {
	users    ports.UserRepository
	hasher   *PasswordHasher
	tokens   *TokenService
	tokenTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
		now:      time.Now,
	}
}

// NormalizeEmail is applied to every email before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(in.Email)
	if in.Name == "" || email == "" || in.Company == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email, company and password are required", domain.ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", domain.ErrValidation)
		}
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		Company:      in.Company,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    s.now().UTC(),
		IsActive:     true,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password are reported identically; deactivated accounts get no token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AccessToken, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &ports.AccessToken{Token: token, TokenType: "bearer"}, nil
}

// Profile returns the stored account, re-read so the response reflects the
// latest profile update.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, upd domain.UserUpdate) (*domain.User, error) {
	updated, err := s.users.Update(ctx, user.ID, upd)
	if err != nil {
		return nil, err
	}
	if !upd.IsEmpty() {
		s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	}
	return updated, nil
}
