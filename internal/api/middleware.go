package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mergington-activities/internal/common/metrics"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request logging and metrics. The route
// label is the registration pattern, not the raw path, to keep metric
// cardinality bounded.
func (h *Handler) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		duration := time.Since(start)
		status := strconv.Itoa(rec.status)

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
		h.obs.RecordRequest(r.Context(), route, status)
		h.obs.RecordRequestDuration(r.Context(), duration, route)

		h.logger.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"route":     route,
			"status":    rec.status,
			"duration":  duration.String(),
		})
	}
}
