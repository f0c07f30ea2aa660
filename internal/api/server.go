package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/metrics"
	"github.com/senior-care-guide/internal/middleware"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
)

// Version is reported by the health endpoint.
var Version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	session       *session.Session
	recommender   service.Recommender
	metrics       *metrics.Collector
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server
	started       time.Time
}

// NewServer creates a new HTTP server instance. recommender serves the
// stateless evaluation endpoint; collector may be nil.
func NewServer(
	configManager domain.ConfigManager,
	sess *session.Session,
	recommender service.Recommender,
	collector *metrics.Collector,
	logger *logrus.Logger,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	if collector != nil {
		router.Use(middleware.Metrics(collector.ObserveHTTP))
	}
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	server := &Server{
		configManager: configManager,
		session:       sess,
		recommender:   recommender,
		metrics:       collector,
		logger:        logger,
		router:        router,
		started:       time.Now(),
	}

	server.setupRoutes()

	return server
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/assessment", s.handleGetAssessment)
		v1.PUT("/assessment", s.handlePutAssessment)

		v1.GET("/recommendation", s.handleGetRecommendation)
		v1.POST("/recommendation", s.handleEvaluate)

		v1.GET("/language", s.handleGetLanguage)
		v1.PUT("/language", s.handlePutLanguage)
		v1.GET("/i18n/:lang", s.handleCatalog)

		v1.GET("/waitlist", s.handleListWaitlist)
		v1.POST("/waitlist", s.handleAddWaitlistItem)
		v1.GET("/waitlist/due", s.handleDueItems)
		v1.POST("/waitlist/:id/follow-up", s.handleFollowUp)
		v1.DELETE("/waitlist/:id", s.handleRemoveWaitlistItem)
	}
}
