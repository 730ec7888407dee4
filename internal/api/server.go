package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nolan/scribecloud/internal/api/handler"
	"github.com/nolan/scribecloud/internal/api/middleware"
	"github.com/nolan/scribecloud/internal/config"
	"github.com/nolan/scribecloud/internal/service"
)

// Services bundles all service dependencies for the router.
type Services struct {
	Ledger        *service.LedgerService
	Transfer      *service.TransferService
	Auth          *service.AuthService
	Admin         *service.AdminService
	Transcription *service.TranscriptionService
	Billing       *service.BillingService // nil if Stripe not configured
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(cfg *config.Config, svcs *Services, logger *slog.Logger, version string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceLog(logger))
	r.Use(middleware.Security(cfg.BaseURL))
	r.Use(middleware.RateLimit(20, 60))

	if cfg.FrontendURL != "" {
		r.Use(middleware.CORS(cfg.FrontendURL))
	}

	// Health and metrics (no auth)
	r.Get("/healthz", handler.Health(version))
	r.Handle("/metrics", promhttp.Handler())

	// Anonymous usage check (identity from request metadata)
	uh := handler.NewUsageHandler(svcs.Ledger)
	r.Get("/usage", uh.Check)

	// Auth routes (no auth required)
	ah := handler.NewAuthHandler(svcs.Auth, svcs.Transfer, cfg.FrontendURL, cfg.DevMode, logger)
	r.Post("/auth/login", ah.Login)
	r.Get("/auth/verify", ah.Verify)

	// Billing webhook (no user auth — verified by Stripe signature)
	var bh *handler.BillingHandler
	if svcs.Billing != nil {
		bh = handler.NewBillingHandler(svcs.Billing, svcs.Ledger)
		r.Post("/billing/webhook", bh.Webhook)
		r.Get("/billing/packs", bh.Packs)
	}

	th := handler.NewTranscriptionHandler(svcs.Transcription)

	// Public shared transcripts
	r.Get("/shared/{token}", th.GetShared)

	// Mixed routes: authenticated users spend tokens, anonymous
	// clients spend free-tier uses.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalUserAuth(cfg.JWTSecret))

		r.Post("/transcriptions", th.Create)
		r.Get("/transcriptions/{id}", th.Get)
		r.Get("/transcriptions/{id}/events", th.Events)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.UserAuth(cfg.JWTSecret))

		r.Get("/auth/me", ah.Me)

		r.Get("/transcriptions", th.List)
		r.Post("/transcriptions/{id}/share", th.Share)

		if bh != nil {
			r.Post("/billing/checkout", bh.CreateCheckout)
			r.Get("/billing/history", bh.History)
		}

		// Admin surface (gated per handler by CheckAdminPermission)
		adh := handler.NewAdminHandler(svcs.Admin)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", adh.ListUsers)
			r.Patch("/users/{id}", adh.UpdateUser)
			r.Get("/users/{id}/transcriptions", adh.GetUserTranscriptions)
			r.Get("/users/{id}/spending", adh.GetUserSpendingHistory)
			r.Post("/compensate", adh.Compensate)
			r.Post("/impersonate/{id}", adh.Impersonate)
		})
	})

	return r
}
