package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics creates middleware that records request durations labelled by
// method, route template and status. Requests that matched no route are
// labelled "unmatched" to keep cardinality bounded.
func Metrics(observer *prometheus.HistogramVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := NewResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			observer.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
