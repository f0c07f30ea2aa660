// Package metrics exposes Prometheus counters for the HTTP API and the session.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/senior-care-guide/internal/domain"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Session metrics
	Recommendations     *prometheus.CounterVec
	WaitlistMutations   *prometheus.CounterVec
	WaitlistSize        prometheus.Gauge
	WaitlistDue         prometheus.Gauge
	PersistenceFailures *prometheus.CounterVec
}

// NewCollector creates a collector on its own registry, so several can
// coexist in one process (tests, CLI and server).
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendations_total",
				Help:      "Recommendations served, by care path and cache use",
			},
			[]string{"path", "cached"},
		),
		WaitlistMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "waitlist_mutations_total",
				Help:      "Waitlist operations, by operation and whether they applied",
			},
			[]string{"operation", "applied"},
		),
		WaitlistSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "waitlist_items",
				Help:      "Number of tracked waitlist items",
			},
		),
		WaitlistDue: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "waitlist_due_items",
				Help:      "Number of waitlist items due for a follow-up",
			},
		),
		PersistenceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persistence_failures_total",
				Help:      "Failed reads or writes of persisted state, by key",
			},
			[]string{"key", "operation"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Recommendations,
		c.WaitlistMutations,
		c.WaitlistSize,
		c.WaitlistDue,
		c.PersistenceFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveHTTP records one finished request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveRecommendation records a served recommendation.
func (c *Collector) ObserveRecommendation(path domain.CarePath, cached bool) {
	c.Recommendations.WithLabelValues(string(path), strconv.FormatBool(cached)).Inc()
}

// ObserveWaitlistMutation records a waitlist operation.
func (c *Collector) ObserveWaitlistMutation(operation string, applied bool) {
	c.WaitlistMutations.WithLabelValues(operation, strconv.FormatBool(applied)).Inc()
}

// SetWaitlist updates the waitlist gauges.
func (c *Collector) SetWaitlist(size, due int) {
	c.WaitlistSize.Set(float64(size))
	c.WaitlistDue.Set(float64(due))
}

// ObservePersistenceFailure records a failed load or save.
func (c *Collector) ObservePersistenceFailure(key, operation string) {
	c.PersistenceFailures.WithLabelValues(key, operation).Inc()
}
