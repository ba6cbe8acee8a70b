package kit

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimitByIP allows limit requests per window for each client address,
// taken from X-Forwarded-For / X-Real-IP when present.
func RateLimitByIP(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, r, http.StatusTooManyRequests, "too many requests", nil)
		}),
	)
}
