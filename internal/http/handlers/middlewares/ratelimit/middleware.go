package ratelimit

import (
	"net/http"

	"filmorate/internal/http/httputils"

	"golang.org/x/time/rate"
)

// MiddlewareRateLimit ограничивает общий поток запросов к серверу.
// nil-лимитер отключает ограничение.
func MiddlewareRateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set(httputils.HeaderRetryAfter, "1")
				httputils.WriteJSONError(w, http.StatusTooManyRequests, httputils.CategoryInternal, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
