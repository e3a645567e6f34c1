package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors of the service. Each instance
// owns its registry, so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec

	// Domain metrics
	DomainErrors *prometheus.CounterVec
	Decisions    *prometheus.CounterVec
	Applications prometheus.Counter

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all collectors under namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		Latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),

		DomainErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domain_errors_total",
				Help:      "Failed operations by error code",
			},
			[]string{"code"},
		),
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "application_decisions_total",
				Help:      "Applications moved to selected or rejected",
			},
			[]string{"decision"},
		),
		Applications: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "applications_submitted_total",
				Help:      "Applications submitted by influencers",
			},
		),

		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}
}

// Handler returns the scrape handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordRequest records a served HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, latency time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.Latency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordDomainError records a failed operation by its error code.
func (m *Metrics) RecordDomainError(code string) {
	m.DomainErrors.WithLabelValues(code).Inc()
}

// RecordDecision records n applications moved to decision.
func (m *Metrics) RecordDecision(decision string, n int) {
	m.Decisions.WithLabelValues(decision).Add(float64(n))
}

// RecordApplication records a submitted application.
func (m *Metrics) RecordApplication() {
	m.Applications.Inc()
}

// RecordRateLimitHit records a rejected request.
func (m *Metrics) RecordRateLimitHit() {
	m.RateLimitHits.Inc()
}
