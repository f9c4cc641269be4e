package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mrivas/bancario/internal/adapter/http/handler"
	"github.com/mrivas/bancario/internal/adapter/http/middleware"
	"github.com/mrivas/bancario/internal/usecase"
)

// CuentasRouterConfig holds dependencies for the accounts service router.
type CuentasRouterConfig struct {
	AccountHandler   *handler.AccountHandler
	MovementHandler  *handler.MovementHandler
	StatementHandler *handler.StatementHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewCuentasRouter creates the HTTP router for the accounts service.
func NewCuentasRouter(cfg CuentasRouterConfig) http.Handler {
	r := newBaseRouter(cfg.Logger, cfg.HealthHandler)

	r.Group(func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/cuentas", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Patch("/{id}", cfg.AccountHandler.Update)
			r.Get("/numero/{numeroCuenta}", cfg.AccountHandler.GetByNumber)
			r.Get("/cliente/{clienteId}", cfg.AccountHandler.ListByCustomer)
		})

		r.Route("/movimientos", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Register)
			r.Get("/", cfg.MovementHandler.List)
			r.Get("/{id}", cfg.MovementHandler.Get)
			r.Get("/cuenta/{numeroCuenta}", cfg.MovementHandler.ListByAccount)
		})

		r.Get("/reportes", cfg.StatementHandler.Get)
	})

	return r
}

// ClientesRouterConfig holds dependencies for the customer service router.
type ClientesRouterConfig struct {
	CustomerHandler  *handler.CustomerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewClientesRouter creates the HTTP router for the customer service.
func NewClientesRouter(cfg ClientesRouterConfig) http.Handler {
	r := newBaseRouter(cfg.Logger, cfg.HealthHandler)

	r.Group(func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/clientes", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Post("/con-cuentas", cfg.CustomerHandler.CreateWithAccounts)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Put("/{id}", cfg.CustomerHandler.Update)
			r.Patch("/{id}", cfg.CustomerHandler.Update)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
			r.Get("/clienteId/{clienteId}", cfg.CustomerHandler.GetByCustomerID)
		})
	})

	return r
}

func newBaseRouter(logger zerolog.Logger, health *handler.HealthHandler) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", health.Liveness)
	r.Get("/ready", health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
