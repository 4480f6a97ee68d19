// Package metrics collects Prometheus metrics for HTTP traffic and
// authentication events and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth actions and outcomes used as label values.
const (
	AuthActionRegister = "register"
	AuthActionLogin    = "login"
	AuthActionRefresh  = "refresh"
	AuthActionLogout   = "logout"

	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder is what the HTTP layer and services report to.
type Recorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	RecordAuthEvent(action, outcome string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	authEvents   *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_auth_events_total",
			Help: "Authentication events by action and outcome.",
		}, []string{"action", "outcome"}),
	}

	reg.MustRegister(c.httpRequests, c.httpDuration, c.authEvents)
	return c
}

// ObserveHTTPRequest records one finished request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthEvent counts an authentication event.
func (c *Collector) RecordAuthEvent(action, outcome string) {
	c.authEvents.WithLabelValues(action, outcome).Inc()
}

// Noop discards everything. It is the default when metrics are not wired.
type Noop struct{}

// ObserveHTTPRequest implements Recorder.
func (Noop) ObserveHTTPRequest(string, string, int, time.Duration) {}

// RecordAuthEvent implements Recorder.
func (Noop) RecordAuthEvent(string, string) {}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
