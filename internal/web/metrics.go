package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/risk29/riskcore/internal/types"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcore_http_requests_total",
			Help: "HTTP requests served, by method, path and status code.",
		},
		[]string{"method", "path", "status"},
	)

	scoringRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcore_scoring_runs_total",
			Help: "Scoring runs, by scoring method and outcome.",
		},
		[]string{"scoring_method", "outcome"},
	)

	scoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riskcore_scoring_duration_seconds",
			Help:    "Wall time of scoring runs, by scoring method.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"scoring_method"},
	)
)

// observeScoring records one scoring run.
func observeScoring(method types.Method, ok bool, elapsed time.Duration) {
	outcome := "ok"
	if !ok {
		outcome = "fallback"
	}
	scoringRequestsTotal.WithLabelValues(method.String(), outcome).Inc()
	scoringDuration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
}

// metricsMiddleware counts every request. The route template is used as the
// path label so IDs in the URL do not explode cardinality.
func (ws *WebServer) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapper.statusCode)).Inc()
	})
}
