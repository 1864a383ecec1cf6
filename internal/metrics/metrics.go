package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hng13/deploypage/internal/domain"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	PageRenders     *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter
}

// New registers all instruments, plus the Go runtime and process
// collectors, with the given registerer.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Total number of deployment pages rendered.",
		}, []string{"variant"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route pattern and status.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency from first middleware to response written.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Requests refused with 429 by the global rate limiter.",
		}),
	}

	reg.MustRegister(
		m.PageRenders,
		m.HTTPRequests,
		m.RequestDuration,
		m.RateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RenderHook returns the callback the page handler invokes after each
// successful render.
func (m *Metrics) RenderHook() func(domain.Variant) {
	return func(v domain.Variant) {
		m.PageRenders.WithLabelValues(string(v)).Inc()
	}
}

// ObserveRequest records one completed request. Matches the signature
// expected by middleware.Instrument.
func (m *Metrics) ObserveRequest(method, route string, status int, latency time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RateLimitHook returns the callback the rate limit middleware invokes on
// each refused request.
func (m *Metrics) RateLimitHook() func() {
	return m.RateLimited.Inc
}
