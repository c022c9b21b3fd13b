package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/EC-WIN-24-NET/VoidMail/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per matched ServeMux pattern. It must wrap the mux
// directly or through middleware that passes the same *http.Request on, so r.Pattern is visible
// after the call.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := routeLabel(r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel keeps label cardinality bounded by using the pattern, not the raw path.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedRoute
	}
	return r.Pattern
}
