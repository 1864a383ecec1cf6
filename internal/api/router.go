package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hng13/deploypage/internal/api/handler"
	apimw "github.com/hng13/deploypage/internal/api/middleware"
	"github.com/hng13/deploypage/internal/metrics"
	"github.com/hng13/deploypage/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
// limiter may be nil to disable rate limiting.
func NewRouter(
	renderer handler.PageRenderer,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	limiter *ratelimiter.Limiter,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer) // recover panics, return 500
	r.Use(chimw.RealIP)    // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.GetHead)   // answer HEAD with the GET handler
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(m.ObserveRequest))

	// --- handler instances ---
	ph := handler.NewPageHandler(renderer, logger, m.RenderHook())
	hh := handler.NewHealthHandler()

	// --- routes ---
	// Probes and scrapes stay outside the limiter.
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(apimw.RateLimit(limiter, m.RateLimitHook()))
		}
		r.Get("/", ph.Home)
	})

	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
