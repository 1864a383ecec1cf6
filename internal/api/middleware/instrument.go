package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ObserveFunc receives one completed request. route is the chi route
// pattern, or "unmatched" when no route handled the request, which keeps
// label cardinality bounded.
type ObserveFunc func(method, route string, status int, latency time.Duration)

// Instrument reports every request to observe. It must be mounted with
// chi's Use so the route pattern is resolved by the time next returns.
func Instrument(observe ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			observe(r.Method, route, wrapped.status, time.Since(start))
		})
	}
}
