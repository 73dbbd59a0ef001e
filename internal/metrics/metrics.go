// Package metrics provides Prometheus instrumentation for the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecommendationsTotal counts recommendation requests by outcome.
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mandi_recommendations_total",
		Help: "Total crop recommendation requests",
	}, []string{"status"})

	// RecommendationDuration tracks end-to-end recommendation latency,
	// dominated by the external providers.
	RecommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mandi_recommendation_duration_seconds",
		Help:    "Crop recommendation request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
	})

	// AnalysisReportsTotal counts built market analysis reports.
	AnalysisReportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mandi_analysis_reports_total",
		Help: "Total market analysis reports built",
	})

	// PriceSourceFallbacks counts commodities resolved by the
	// reference table after the live sources missed.
	PriceSourceFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mandi_price_source_fallbacks_total",
		Help: "Commodity quotes served from the reference table",
	})

	// AdvisoryFallbacks counts advisory texts served by the
	// rule-based fallback instead of the LLM.
	AdvisoryFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mandi_advisory_fallbacks_total",
		Help: "Advisories generated without the LLM",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mandi_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mandi_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 15.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start).Seconds()

		// Use the raw path; the API surface is small and static.
		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
