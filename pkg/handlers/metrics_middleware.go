package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
)

// MetricsMiddleware records a count and duration metric for every request
// served by the wrapped handler. The path label uses the mux route template so
// that cardinality stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}
		metrics.IncreaseAPIRequestsCountMetric(r.Method, path, recorder.status)
		metrics.UpdateAPIRequestDurationMetric(r.Method, path, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
