package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/novapay/fraudscore/internal/config"
	"github.com/novapay/fraudscore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubClassifier returns a fixed fraud probability for any input.
type stubClassifier struct {
	p float64
}

func (s *stubClassifier) PredictProba(features []float64) ([]float64, error) {
	return []float64{1 - s.p, s.p}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           "5000",
		Env:            "development",
		LogLevel:       "error",
		ModelPath:      filepath.Join(t.TempDir(), "missing.json"),
		AllowedOrigins: []string{"*"},
		RateLimitRPM:   600,
	}
}

func newTestServer(t *testing.T, pkg *model.Package) *Server {
	t.Helper()
	opts := []Option{}
	if pkg != nil {
		opts = append(opts, WithModel(pkg))
	}
	s, err := New(testConfig(t), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	return s
}

func scoringPackage(p float64) *model.Package {
	return &model.Package{
		Classifier:       &stubClassifier{p: p},
		BestThreshold:    0.42,
		DefaultThreshold: 0.5,
	}
}

func postPredict(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	s.Router().ServeHTTP(w, req)
	return w
}

func TestPredictSuccess(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.83))

	w := postPredict(t, s, map[string]any{
		"home_country":    "US",
		"source_currency": "USD",
		"dest_currency":   "EUR",
		"channel":         "WEB",
		"amount_src":      500,
		"amount_usd":      450,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success          bool    `json:"success"`
		FraudProbability float64 `json:"fraud_probability"`
		IsFraud          bool    `json:"is_fraud_prediction"`
		RiskLevel        string  `json:"risk_level"`
		RiskColor        string  `json:"risk_color"`
		Thresholds       struct {
			Best    float64 `json:"best"`
			Default float64 `json:"default"`
		} `json:"thresholds"`
		Recommendation struct {
			Action  string `json:"action"`
			Details string `json:"details"`
			Icon    string `json:"icon"`
		} `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 83.0, resp.FraudProbability)
	assert.True(t, resp.IsFraud)
	assert.Equal(t, "CRITICAL", resp.RiskLevel)
	assert.Equal(t, "#dc2626", resp.RiskColor)
	assert.Equal(t, 42.0, resp.Thresholds.Best)
	assert.Equal(t, 50.0, resp.Thresholds.Default)
	assert.Equal(t, "BLOCK TRANSACTION", resp.Recommendation.Action)
	assert.NotEmpty(t, resp.Recommendation.Details)
}

func TestPredictDeterministic(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.25))
	body := map[string]any{"home_country": "CA", "amount_src": 123.45}

	first := postPredict(t, s, body)
	second := postPredict(t, s, body)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestPredictMalformedJSON(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid JSON body", resp["error"])
}

func TestPredictInvalidNumericField(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := postPredict(t, s, map[string]any{"amount_src": "not-a-number"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "amount_src")
	// Raw parse detail must not leak to the client
	assert.NotContains(t, resp["error"], "strconv")
}

func TestPredictNoModel(t *testing.T) {
	s := newTestServer(t, nil) // artifact path points at a missing file

	w := postPredict(t, s, map[string]any{"home_country": "US"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Model not loaded. Please check if the model file exists.", resp["error"])
}

func TestPredictUnknownTokenFallsBack(t *testing.T) {
	// Permissive mode: an unknown country maps to code 0 and still scores.
	s := newTestServer(t, scoringPackage(0.05))

	w := postPredict(t, s, map[string]any{"home_country": "ZZ"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPredictStrictModeRejectsUnknownToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.StrictCategorical = true
	s, err := New(cfg, WithModel(scoringPackage(0.05)))
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })

	w := postPredict(t, s, map[string]any{"home_country": "ZZ"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "home_country")
}

func TestOptionsEndpoint(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.ElementsMatch(t, []string{"CA", "UK", "US"}, resp["home_countries"])
	assert.Len(t, resp["dest_currencies"], 9)
	assert.Len(t, resp["days"], 7)
	assert.Len(t, resp["periods"], 4)
}

func TestHealthDegradedWithoutModel(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
}

func TestHealthHealthyWithModel(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestConsolePage(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Fraud Score")
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set("X-Request-ID", "test-req-42")
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "test-req-42", w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, scoringPackage(0.5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
