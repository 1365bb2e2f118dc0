// Package app wires repositories, services and the HTTP router together.
package app

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/expotrade/client-portal/internal/api"
	"github.com/expotrade/client-portal/internal/api/handler"
	"github.com/expotrade/client-portal/internal/api/middleware"
	"github.com/expotrade/client-portal/internal/core/ports"
	"github.com/expotrade/client-portal/internal/core/service"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
	mongostore "github.com/expotrade/client-portal/internal/infrastructure/db/mongo"
	"github.com/expotrade/client-portal/internal/pkg/config"
)

// Repositories is one implementation of every store port.
type Repositories struct {
	Users        ports.UserRepository
	Orders       ports.OrderRepository
	Documents    ports.DocumentRepository
	Messages     ports.MessageRepository
	Leads        ports.LeadRepository
	StatusChecks ports.StatusCheckRepository
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Users:        s.Users(),
		Orders:       s.Orders(),
		Documents:    s.Documents(),
		Messages:     s.Messages(),
		Leads:        s.Leads(),
		StatusChecks: s.StatusChecks(),
	}
}

func MongoRepositories(db *mongo.Database) Repositories {
	s := mongostore.NewStore(db)
	return Repositories{
		Users:        s.Users(),
		Orders:       s.Orders(),
		Documents:    s.Documents(),
		Messages:     s.Messages(),
		Leads:        s.Leads(),
		StatusChecks: s.StatusChecks(),
	}
}

// Options carries the optional runtime collaborators.
type Options struct {
	Limiter   middleware.Limiter
	Readiness map[string]handler.HealthCheck
}

// NewDependencies builds every service on top of repos.
func NewDependencies(cfg *config.Config, repos Repositories, log zerolog.Logger, opts Options) api.Dependencies {
	tokens := service.NewTokenService(cfg.JWTSecret)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)

	return api.Dependencies{
		APIPrefix: cfg.APIPrefix,
		Logger:    log,

		Auth:      service.NewAuthService(repos.Users, hasher, tokens, cfg.TokenTTL, log.With().Str("component", "auth").Logger()),
		Identity:  service.NewIdentityResolver(tokens, repos.Users, log.With().Str("component", "identity").Logger()),
		Orders:    service.NewOrderService(repos.Orders, log.With().Str("component", "orders").Logger()),
		Documents: service.NewDocumentService(repos.Documents, repos.Orders, log.With().Str("component", "documents").Logger()),
		Messages:  service.NewMessageService(repos.Messages, repos.Orders, log.With().Str("component", "messages").Logger()),
		Dashboard: service.NewDashboardService(repos.Orders, repos.Messages),
		Leads:     service.NewLeadService(repos.Leads, log.With().Str("component", "leads").Logger()),
		Status:    service.NewStatusService(repos.StatusChecks),

		Limiter:   opts.Limiter,
		Readiness: opts.Readiness,
	}
}

// NewServer is NewDependencies followed by api.NewRouter.
func NewServer(cfg *config.Config, repos Repositories, log zerolog.Logger, opts Options) *echo.Echo {
	return api.NewRouter(NewDependencies(cfg, repos, log, opts))
}
