package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/activity"
	"github.com/mediolano-app/mip-indexer/internal/api/middleware"
	"github.com/mediolano-app/mip-indexer/internal/api/rest"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
	"github.com/mediolano-app/mip-indexer/internal/timeline"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Timeline rest.TimelineConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	timeline   timeline.Service
	indexer    indexer.Client
	aggregator activity.Aggregator
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, timelineSvc timeline.Service, indexerClient indexer.Client, aggregator activity.Aggregator) *Server {
	return &Server{
		config:     cfg,
		timeline:   timelineSvc,
		indexer:    indexerClient,
		aggregator: aggregator,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.timeline, s.indexer, s.aggregator, s.config.Timeline)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
