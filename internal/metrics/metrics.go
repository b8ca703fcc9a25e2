// Package metrics provides Prometheus instrumentation for the fraud scoring service.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "novapay",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "novapay",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// PredictionsTotal counts completed scoring requests by assigned risk tier.
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "novapay",
			Name:      "predictions_total",
			Help:      "Total scoring requests served by risk tier.",
		},
		[]string{"risk_level"},
	)

	// PredictionErrorsTotal counts scoring requests that failed, by reason.
	PredictionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "novapay",
			Name:      "prediction_errors_total",
			Help:      "Total failed scoring requests by reason.",
		},
		[]string{"reason"},
	)

	// InferenceDuration observes encode-plus-inference latency per request.
	InferenceDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "novapay",
		Name:      "inference_duration_seconds",
		Help:      "Time spent encoding features and running the classifier.",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	})

	// ModelLoaded reports whether a classifier artifact is loaded (1) or the
	// service is running degraded (0).
	ModelLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "novapay",
		Name:      "model_loaded",
		Help:      "1 if a classifier artifact is loaded, 0 if running degraded.",
	})

	// ActiveWebSocketClients tracks connected WebSocket clients.
	ActiveWebSocketClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "novapay",
			Name:      "active_websocket_clients",
			Help:      "Number of currently connected WebSocket clients.",
		},
	)

	// GoroutineCount tracks the current number of goroutines.
	GoroutineCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "novapay", Name: "goroutines",
		Help: "Current number of goroutines.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		PredictionsTotal,
		PredictionErrorsTotal,
		InferenceDuration,
		ModelLoaded,
		ActiveWebSocketClients,
		GoroutineCount,
	)
}

// StartRuntimeCollector periodically samples the goroutine count into its
// gauge. Call in a goroutine; exits when ctx is done.
func StartRuntimeCollector(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			GoroutineCount.Set(float64(runtime.NumGoroutine()))
		}
	}
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(), // Uses route pattern, not actual path (avoids cardinality explosion)
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus metrics HTTP handler for /metrics endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
