package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	registry *prometheus.Registry

	// GuardDecisionsTotal counts request guard outcomes by guard name and
	// decision (authorized, unauthorized, forbidden).
	GuardDecisionsTotal *prometheus.CounterVec

	// ResolverErrorsTotal counts backend failures swallowed by the role
	// resolver. These surface to callers as "not found", so the counter is
	// the only way to tell the two apart.
	ResolverErrorsTotal *prometheus.CounterVec

	// RoleCacheHitsTotal and RoleCacheMissesTotal track the resolver's
	// in-process role cache.
	RoleCacheHitsTotal   prometheus.Counter
	RoleCacheMissesTotal prometheus.Counter

	// HTTPRequestsTotal counts requests by method, path, and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// NotificationsTotal counts invitation email deliveries by outcome
	// (sent, retried, failed).
	NotificationsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		GuardDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhub_guard_decisions_total",
				Help: "Total request guard decisions",
			},
			[]string{"guard", "decision"},
		),
		ResolverErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhub_resolver_errors_total",
				Help: "Total backend errors swallowed by the role resolver",
			},
			[]string{"operation"},
		),
		RoleCacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhub_role_cache_hits_total",
				Help: "Total role cache hits",
			},
		),
		RoleCacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhub_role_cache_misses_total",
				Help: "Total role cache misses",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhub_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhub_notifications_total",
				Help: "Total invitation email deliveries by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.GuardDecisionsTotal,
		m.ResolverErrorsTotal,
		m.RoleCacheHitsTotal,
		m.RoleCacheMissesTotal,
		m.HTTPRequestsTotal,
		m.NotificationsTotal,
	)

	return m
}

// Handler returns a gin handler serving the /metrics endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
