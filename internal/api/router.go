package api

import (
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/expotrade/client-portal/internal/api/handler"
	"github.com/expotrade/client-portal/internal/api/middleware"
	"github.com/expotrade/client-portal/internal/core/ports"
)

const DefaultAPIPrefix = "/api"

// Dependencies is everything the router needs. Limiter may be nil to disable
// form rate limiting; Readiness may be empty.
type Dependencies struct {
	APIPrefix string
	Logger    zerolog.Logger

	Auth      ports.AuthService
	Identity  ports.Authenticator
	Orders    ports.OrderService
	Documents ports.DocumentService
	Messages  ports.MessageService
	Dashboard ports.DashboardService
	Leads     ports.LeadService
	Status    ports.StatusService

	Limiter   middleware.Limiter
	Readiness map[string]handler.HealthCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(middleware.Metrics())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	documentHandler := handler.NewDocumentHandler(deps.Documents)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	leadHandler := handler.NewLeadHandler(deps.Leads)
	statusHandler := handler.NewStatusHandler(deps.Status)
	healthHandler := handler.NewHealthHandler(deps.Readiness)

	// --- Health probes, metrics and docs (outside the API prefix) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(normalizePrefix(deps.APIPrefix))

	// --- Public routes ---
	api.GET("/", statusHandler.Root)
	api.POST("/status", statusHandler.Create)
	api.GET("/status", statusHandler.List)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/contact", leadHandler.Contact, middleware.FormRateLimit(deps.Limiter, "contact", deps.Logger))
	api.POST("/quote", leadHandler.Quote, middleware.FormRateLimit(deps.Limiter, "quote", deps.Logger))

	// --- Authenticated routes ---
	authed := middleware.Auth(deps.Identity)

	api.GET("/profile", authHandler.GetProfile, authed)
	api.PUT("/profile", authHandler.UpdateProfile, authed)

	api.POST("/orders", orderHandler.Create, authed)
	api.GET("/orders", orderHandler.List, authed)
	api.GET("/orders/:id", orderHandler.Get, authed)
	api.PUT("/orders/:id", orderHandler.Update, authed)
	api.GET("/orders/:id/documents", documentHandler.ListForOrder, authed)

	api.POST("/documents", documentHandler.Upload, authed)
	api.GET("/documents/:id", documentHandler.Download, authed)

	api.POST("/messages", messageHandler.Send, authed)
	api.GET("/messages", messageHandler.List, authed)
	api.PUT("/messages/:id/read", messageHandler.MarkRead, authed)

	api.GET("/dashboard/stats", dashboardHandler.Stats, authed)

	return e
}

// Routes returns the registered routes sorted by path, then method.
func Routes(e *echo.Echo) []*echo.Route {
	var out []*echo.Route
	for _, r := range e.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
