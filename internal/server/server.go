// Package server sets up the HTTP server with all routes
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novapay/fraudscore/internal/config"
	"github.com/novapay/fraudscore/internal/features"
	"github.com/novapay/fraudscore/internal/health"
	"github.com/novapay/fraudscore/internal/logging"
	"github.com/novapay/fraudscore/internal/metrics"
	"github.com/novapay/fraudscore/internal/model"
	"github.com/novapay/fraudscore/internal/ratelimit"
	"github.com/novapay/fraudscore/internal/realtime"
	"github.com/novapay/fraudscore/internal/security"
	"github.com/novapay/fraudscore/internal/validation"
)

// -----------------------------------------------------------------------------
// Server
// -----------------------------------------------------------------------------

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg          *config.Config
	encoder      *features.Encoder
	realtimeHub  *realtime.Hub
	rateLimiter  *ratelimit.Limiter
	checks       *health.Registry
	router       *gin.Engine
	httpSrv      *http.Server
	logger       *slog.Logger
	cancelRunCtx context.CancelFunc // cancels background goroutines started in Run

	// Model package, swappable at runtime. nil means degraded mode.
	modelMu sync.RWMutex
	pkg     *model.Package

	// Health state
	ready   atomic.Bool
	healthy atomic.Bool
}

// Option configures the server
type Option func(*Server)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithModel injects a pre-loaded model package (for testing)
func WithModel(pkg *model.Package) Option {
	return func(s *Server) {
		s.pkg = pkg
	}
}

// New creates a new server instance. The model artifact is loaded from
// cfg.ModelPath unless one was injected; a missing artifact is logged and
// the server starts degraded.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		encoder: &features.Encoder{Strict: cfg.StrictCategorical},
		checks:  health.NewRegistry(),
		logger:  logging.New(cfg.LogLevel, "json"),
	}

	// Apply options first (may set model/logger)
	for _, opt := range opts {
		opt(s)
	}

	if s.pkg == nil {
		pkg, err := model.Load(cfg.ModelPath)
		if err != nil {
			s.logger.Warn("model artifact unavailable, serving degraded",
				"path", cfg.ModelPath,
				"error", err,
			)
		} else {
			s.pkg = pkg
			s.logger.Info("model loaded",
				"path", cfg.ModelPath,
				"best_threshold", pkg.BestThreshold,
				"default_threshold", pkg.DefaultThreshold,
			)
		}
	}
	metrics.ModelLoaded.Set(boolGauge(s.pkg != nil))

	s.checks.Register("model", health.ModelChecker(func() bool {
		return s.model() != nil
	}))

	// Create realtime hub for WebSocket streaming
	s.realtimeHub = realtime.NewHub(s.logger)

	// Configure gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	s.healthy.Store(true)

	return s, nil
}

// model returns the current model package, or nil when degraded.
func (s *Server) model() *model.Package {
	s.modelMu.RLock()
	defer s.modelMu.RUnlock()
	return s.pkg
}

// SetModel swaps the model package at runtime and announces the change.
func (s *Server) SetModel(pkg *model.Package) {
	s.modelMu.Lock()
	s.pkg = pkg
	s.modelMu.Unlock()

	metrics.ModelLoaded.Set(boolGauge(pkg != nil))
	if s.realtimeHub != nil {
		s.realtimeHub.BroadcastModelStatus(pkg != nil)
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

func (s *Server) setupMiddleware() {
	// Recovery with logging
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.L(c.Request.Context()).Error("panic recovered",
			"error", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An unexpected error occurred",
		})
	}))

	// Security headers
	s.router.Use(security.HeadersMiddleware())

	// CORS
	s.router.Use(security.CORSMiddleware(s.cfg.AllowedOrigins))

	// Request size limit
	s.router.Use(validation.RequestSizeMiddleware(validation.MaxRequestSize))

	// Rate limiting
	limiterCfg := ratelimit.DefaultConfig()
	limiterCfg.RequestsPerMinute = s.cfg.RateLimitRPM
	s.rateLimiter = ratelimit.New(limiterCfg)
	s.router.Use(s.rateLimiter.Middleware())

	// Prometheus metrics
	s.router.Use(metrics.Middleware())

	// Request ID
	s.router.Use(s.requestIDMiddleware())

	// Logging
	s.router.Use(s.loggingMiddleware())
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for existing request ID (from load balancer, etc.)
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}

		// Add to context
		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		ctx = logging.WithLogger(ctx, s.logger)
		c.Request = c.Request.WithContext(ctx)

		// Set response header
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := logging.L(c.Request.Context())

		// Log level based on status code
		switch {
		case status >= 500:
			logger.Error("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", c.ClientIP(),
			)
		case status >= 400:
			logger.Warn("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		default:
			logger.Info("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		}
	}
}

// -----------------------------------------------------------------------------
// Routes
// -----------------------------------------------------------------------------

func (s *Server) setupRoutes() {
	// Health & metrics endpoints
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/health/live", s.livenessHandler)
	s.router.GET("/health/ready", s.readinessHandler)
	s.router.GET("/metrics", metrics.Handler())

	// Scoring console (embedded HTML)
	s.router.GET("/", consoleHandler)

	// WebSocket for the live prediction feed
	s.router.GET("/ws", func(c *gin.Context) {
		s.realtimeHub.HandleWebSocket(c.Writer, c.Request)
	})

	// Scoring API
	s.router.POST("/predict", s.predictHandler)
	s.router.GET("/api/options", s.optionsHandler)
	s.router.GET("/api/stats", s.statsHandler)
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Run starts the HTTP server with graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	// Create a cancellable context for background goroutines so Shutdown() can stop them.
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelRunCtx = cancel

	s.httpSrv = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Channel to catch server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.logger.Info("starting server",
			"port", s.cfg.Port,
			"model_loaded", s.model() != nil,
		)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Start realtime hub
	go s.realtimeHub.Run(runCtx)

	// Sample runtime gauges
	go metrics.StartRuntimeCollector(runCtx, 15*time.Second)

	// Mark as ready after brief delay for startup
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.ready.Store(true)
		s.logger.Info("server ready")
	}()

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	s.ready.Store(false)
	s.logger.Info("starting graceful shutdown")

	// Cancel the context for background goroutines (hub, collectors)
	if s.cancelRunCtx != nil {
		s.cancelRunCtx()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// Router returns the gin router for testing
func (s *Server) Router() *gin.Engine {
	return s.router
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func generateRequestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
