// Package metrics exposes Prometheus collectors for the role lifecycle and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"carpool/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns every collector the service exports on its own prometheus.Registry,
// so tests and multiple instances never collide on the global default registry.
type Registry struct {
	registry *prometheus.Registry

	roleOperations      *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates the registry with process and Go runtime collectors attached.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		roleOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carpool_role_lifecycle_total",
				Help: "Role lifecycle operations by operation, kind and outcome",
			},
			[]string{"operation", "kind", "outcome"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carpool_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "carpool_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.roleOperations,
		r.httpRequestsTotal,
		r.httpRequestDuration,
	)

	return r
}

// NewLifecycleMetrics exposes the registry as the domain's LifecycleMetrics.
func NewLifecycleMetrics(r *Registry) service.LifecycleMetrics {
	return r
}

// ObserveRoleOperation counts one lifecycle call.
func (r *Registry) ObserveRoleOperation(operation, kind, outcome string) {
	r.roleOperations.WithLabelValues(operation, kind, outcome).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched route pattern,
// never the raw path, to keep label cardinality bounded.
func (r *Registry) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
