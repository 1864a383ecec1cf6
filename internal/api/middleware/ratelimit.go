package middleware

import "net/http"

// Allower decides whether a request may proceed.
type Allower interface {
	Allow() bool
}

// RateLimit refuses requests with 429 when limiter has no token available.
// onLimited may be nil.
func RateLimit(limiter Allower, onLimited func()) func(http.Handler) http.Handler {
	if onLimited == nil {
		onLimited = func() {}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				onLimited()
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
