package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novapay/fraudscore/internal/features"
	"github.com/novapay/fraudscore/internal/health"
	"github.com/novapay/fraudscore/internal/logging"
	"github.com/novapay/fraudscore/internal/metrics"
	"github.com/novapay/fraudscore/internal/model"
	"github.com/novapay/fraudscore/internal/realtime"
	"github.com/novapay/fraudscore/internal/scoring"
	"github.com/novapay/fraudscore/internal/traces"
	"github.com/novapay/fraudscore/internal/validation"
)

// Client-facing error messages are fixed strings: field names are safe to
// echo, raw error detail is logged server-side only.
const (
	msgInvalidJSON     = "Invalid JSON body"
	msgModelNotLoaded  = "Model not loaded. Please check if the model file exists."
	msgInferenceFailed = "Error making prediction. Please check your input values."
)

// predictHandler handles POST /predict
func (s *Server) predictHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("bad_json").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   msgInvalidJSON,
		})
		return
	}

	ctx, span := traces.StartSpan(ctx, "predict",
		traces.Channel(stringAttr(raw, "channel")),
		traces.Corridor(stringAttr(raw, "home_country")+"->"+stringAttr(raw, "ip_country")),
	)
	defer span.End()

	start := time.Now()

	vector, err := s.encoder.Encode(raw)
	if err != nil {
		var invalid *features.InvalidFieldError
		var unknown *features.UnknownTokenError
		switch {
		case errors.As(err, &invalid):
			metrics.PredictionErrorsTotal.WithLabelValues("invalid_field").Inc()
			logging.L(ctx).Warn("encoding rejected", "field", invalid.Field, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Invalid numeric value for field '%s'", invalid.Field),
			})
		case errors.As(err, &unknown):
			metrics.PredictionErrorsTotal.WithLabelValues("unknown_token").Inc()
			logging.L(ctx).Warn("encoding rejected", "field", unknown.Field, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Unrecognized value for field '%s'", unknown.Field),
			})
		default:
			metrics.PredictionErrorsTotal.WithLabelValues("encoding").Inc()
			logging.L(ctx).Error("encoding failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   msgInferenceFailed,
			})
		}
		return
	}

	result, err := scoring.Score(vector, s.model())
	if err != nil {
		if errors.Is(err, model.ErrNotLoaded) {
			metrics.PredictionErrorsTotal.WithLabelValues("model_unavailable").Inc()
			logging.L(ctx).Error("scoring unavailable", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   msgModelNotLoaded,
			})
			return
		}
		metrics.PredictionErrorsTotal.WithLabelValues("inference").Inc()
		logging.L(ctx).Error("inference failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   msgInferenceFailed,
		})
		return
	}

	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.WithLabelValues(string(result.Tier)).Inc()
	span.SetAttributes(
		traces.RiskTier(string(result.Tier)),
		traces.Probability(result.Probability),
	)

	s.realtimeHub.BroadcastPrediction(realtime.PredictionEvent{
		FraudProbability: result.Probability,
		RiskLevel:        string(result.Tier),
		RiskColor:        result.Color,
		IsFraud:          result.IsFraudBest,
		Channel:          stringAttr(raw, "channel"),
		Corridor:         stringAttr(raw, "home_country") + "->" + stringAttr(raw, "ip_country"),
	})

	logging.L(ctx).Info("transaction scored",
		"risk_level", result.Tier,
		"fraud_probability", result.Probability,
		"is_fraud", result.IsFraudBest,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"fraud_probability":   result.ProbabilityPct,
		"is_fraud_prediction": result.IsFraudBest,
		"risk_level":          string(result.Tier),
		"risk_color":          result.Color,
		"thresholds": gin.H{
			"best":    result.BestThresholdPct,
			"default": result.DefaultThresholdPct,
		},
		"recommendation": result.Recommendation,
	})
}

// optionsHandler handles GET /api/options: the fixed dropdown enumerations,
// served straight from the encoding tables.
func (s *Server) optionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, features.Options())
}

// statsHandler handles GET /api/stats with realtime hub counters.
func (s *Server) statsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model_loaded": s.model() != nil,
		"realtime":     s.realtimeHub.Stats(),
	})
}

// stringAttr pulls a string attribute for span decoration and broadcast;
// sanitized since these values are echoed to other connected clients.
func stringAttr(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return validation.SanitizeString(s, validation.MaxStringLength)
}

// -----------------------------------------------------------------------------
// Health handlers
// -----------------------------------------------------------------------------

// HealthResponse for health check endpoints
type HealthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version"`
	Checks    []health.Status `json:"checks,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// healthHandler reports subsystem health. A missing model degrades the
// report but keeps 200: the process is serving, just without a classifier.
func (s *Server) healthHandler(c *gin.Context) {
	healthy, statuses := s.checks.CheckAll(c.Request.Context())

	status := "healthy"
	if !healthy {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Version:   "0.1.0",
		Checks:    statuses,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) livenessHandler(c *gin.Context) {
	if !s.healthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
