package router

import (
	"log/slog"
	"net/http"

	"github.com/danishfaisall/gokart/internal/pkg/ratelimit"
)

// RateLimit throttles requests per client IP using the given limiter. The
// limiter failing open is deliberate: a redis outage must not take down the
// API with it.
func RateLimit(limiter ratelimit.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), clientKey(r))
			if err != nil {
				slog.WarnContext(r.Context(), "rate limiter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				writeJSON(w, errorResponse{Message: "Too many requests, please try again later"}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller. RemoteAddr has already been rewritten to
// the real client IP by middlewareIP.
func clientKey(r *http.Request) string {
	return r.RemoteAddr
}
