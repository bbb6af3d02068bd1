package middleware

import (
	"net/http"
	"time"

	"food-picker/apperrors"
	"food-picker/metrics"
	"food-picker/server/respond"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
)

// RateLimit allows perMinute requests per client IP and answers the rest with
// 429 before the handler runs.
func RateLimit(route string, perMinute int, m *metrics.Metrics) mux.MiddlewareFunc {
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if m != nil {
				m.RateLimitRejects.WithLabelValues(route).Inc()
			}
			respond.Error(w, nil, apperrors.ErrRateLimited)
		}),
	)
}
