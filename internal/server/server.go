// Package server exposes the carrier engagement API over HTTP: eligibility
// verification, load search, offer and call-outcome logging, the ops
// dashboard and health probes.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/config"
	"github.com/jonleinena/happyrobot-interview/internal/storage"
	"github.com/jonleinena/happyrobot-interview/internal/usecase"
)

// Server is the HTTP front of the service. Handlers are stateless; all state
// lives behind the service and its repositories.
type Server struct {
	cfg        *config.Config
	service    *usecase.Service
	pinger     storage.Pinger
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the router and wires all routes.
func NewServer(cfg *config.Config, service *usecase.Service, pinger storage.Pinger, logger *zap.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	s := &Server{
		cfg:     cfg,
		service: service,
		pinger:  pinger,
		engine:  engine,
		logger:  logger,
		httpServer: &http.Server{
			Addr:    ":" + strconv.Itoa(cfg.Server.Port),
			Handler: engine,
		},
	}

	engine.Use(s.requestIDMiddleware())
	engine.Use(s.loggingMiddleware())
	engine.Use(s.recoveryMiddleware())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/health/db", s.handleDBHealth)

	if s.cfg.Metrics.Enabled {
		s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Data-bearing endpoints require the API key from the Authorization header
	authorized := s.engine.Group("/", s.apiKeyAuth(headerKeyExtractor))
	{
		authorized.GET("/auth/validate", s.handleValidateKey)
		authorized.GET("/carriers/find", s.handleVerifyCarrier)
		authorized.GET("/loads", s.handleSearchLoads)
		authorized.GET("/loads/:load_id", s.handleGetLoad)
		authorized.POST("/offers/log", s.handleLogOffer)
		authorized.POST("/offers/log-outcome", s.handleLogCallOutcome)
		authorized.GET("/offers/logs", s.handleListLogs)
	}

	// The dashboard is opened in a browser, so the key arrives as a query param
	s.engine.GET("/offers/dashboard", s.apiKeyAuth(queryKeyExtractor), s.handleDashboard)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleRoot serves the service banner.
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to HappyRobot Carrier Engagement API",
		"version":     "1.0.0",
		"description": "API for AI-powered inbound carrier engagement and load matching",
	})
}

// abortWithError writes the mapped error response and stops the middleware
// chain. Used by middleware; handlers return normally after respondError.
func (s *Server) abortWithError(c *gin.Context, err error) {
	s.respondError(c, err)
	c.Abort()
}

// respondError maps the application error taxonomy onto HTTP status codes.
// Internal details are never leaked on 5xx responses.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidationError(err) || apperrors.IsBadRequestError(err):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case apperrors.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case apperrors.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case apperrors.IsDuplicateError(err) || apperrors.IsConflictError(err):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case apperrors.IsMisconfiguredError(err):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		s.logger.Error("Unhandled error in request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
