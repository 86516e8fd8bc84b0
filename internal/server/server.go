// Package server exposes the admin API over HTTP: age group and staff
// management, the staffing calculator, pricing and expense configuration,
// the capacity planner and the dashboard.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/internal/config"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// Server wires the HTTP API to the database and logger.
type Server struct {
	engine   *gin.Engine
	database db.Database
	logger   *zap.Logger
	cfg      *config.Config
}

// New builds the server with all routes registered.
func New(cfg *config.Config, database db.Database, logger *zap.Logger) *Server {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:   gin.New(),
		database: database,
		logger:   logger,
		cfg:      cfg,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.registerRoutes()

	return s
}

// Run starts the HTTP server on the configured address and blocks.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Handler exposes the underlying handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogger logs each request with its status and duration, and feeds
// the request metrics.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		observeRequest(c.Request.Method, c.FullPath(), status)
		s.logger.Debug("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	type pinger interface {
		Ping(ctx context.Context) error
	}
	if p, ok := s.database.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			s.logger.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
