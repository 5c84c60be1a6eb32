package middleware

import (
	"net/http"
	"strconv"
	"time"

	"celebrity-booking/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency by chi route pattern, keeping
// label cardinality bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrap(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
