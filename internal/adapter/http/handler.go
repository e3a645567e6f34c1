package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-hub/internal/config/configs"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/metrics"
)

// Check reports whether a dependency is ready to serve traffic.
type Check func(ctx context.Context) error

// Options carries the optional collaborators of the HTTP adapter.
type Options struct {
	// Metrics receives request and domain counters. A private instance is
	// created when nil.
	Metrics *metrics.Metrics
	// MetricsPath exposes the scrape endpoint when non-empty.
	MetricsPath string
	// RateLimit configures the per-client limiter on /api/v1.
	RateLimit configs.RateLimit
	// TrustProxy lets forwarding headers set the client address used by
	// the limiter and request logs. Off, the socket peer address is used.
	TrustProxy bool
	// Ready lists the dependencies probed by /readyz, by name.
	Ready map[string]Check
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign usecase, the identity provider used to authenticate
// bearer tokens and a logger for structured logging. Routes are registered
// on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.CampaignUseCase
	identity port.IdentityProvider
	logger   *slog.Logger
	metrics  *metrics.Metrics
	limiter  *rateLimiter
	ready    map[string]Check
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, identity port.IdentityProvider, logger *slog.Logger, opts Options) *Handler {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New("campaign_hub")
	}
	h := &Handler{
		svc:      svc,
		identity: identity,
		logger:   logger,
		metrics:  opts.Metrics,
		limiter:  newRateLimiter(opts.RateLimit),
		ready:    opts.Ready,
	}

	r := chi.NewRouter()
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(requestIDMiddleware)
	r.Use(h.recoverMiddleware)
	r.Use(h.observeMiddleware)

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	if opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, h.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.rateLimitMiddleware)

		// public read side
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Patch("/campaigns/{id}/status", h.handleTransitionStatus)
			r.Get("/campaigns/{id}/applicants", h.handleApplicantBoard)
			r.Post("/campaigns/{id}/selection", h.handleSelection)
			r.Post("/campaigns/{id}/rejection", h.handleRejection)

			r.Get("/advertiser/campaigns", h.handleListAdvertiserCampaigns)
			r.Get("/advertiser/campaigns/{id}", h.handleGetAdvertiserCampaign)

			r.Post("/applications", h.handleApply)
			r.Get("/me/applications", h.handleListMyApplications)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatusError(w, http.StatusNotFound, "ROUTE_NOT_FOUND", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatusError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
