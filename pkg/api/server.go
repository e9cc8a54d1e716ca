// Package api is the HTTP control plane: a thin gin adapter over the
// services, orchestrator, and comparator.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neonhq/neon/pkg/compare"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/orchestrator"
	"github.com/neonhq/neon/pkg/services"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	db         *database.Client
	suites     *services.SuiteService
	runs       *services.RunService
	stats      *services.StatsService
	orch       *orchestrator.Orchestrator
	comparator *compare.Comparator
	logger     *slog.Logger
}

// NewServer creates the HTTP server adapter.
func NewServer(db *database.Client, suites *services.SuiteService, runs *services.RunService, stats *services.StatsService, orch *orchestrator.Orchestrator, comparator *compare.Comparator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:         db,
		suites:     suites,
		runs:       runs,
		stats:      stats,
		orch:       orch,
		comparator: comparator,
		logger:     logger,
	}
}

// Router builds the route tree. apiKeys maps bearer tokens to principals.
func (s *Server) Router(apiKeys map[string]models.Principal) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders(), requestLogger(s.logger))

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware(keyMapResolver(apiKeys)))

	v1.GET("/suites", requireScope(models.ScopeRead), s.listSuites)
	v1.POST("/suites", requireScope(models.ScopeWrite), s.createSuite)
	v1.GET("/suites/:id", requireScope(models.ScopeRead), s.getSuite)
	v1.PUT("/suites/:id", requireScope(models.ScopeWrite), s.updateSuite)
	v1.DELETE("/suites/:id", requireScope(models.ScopeWrite), s.deleteSuite)

	v1.GET("/suites/:id/cases", requireScope(models.ScopeRead), s.listCases)
	v1.POST("/suites/:id/cases", requireScope(models.ScopeWrite), s.createCase)
	v1.GET("/cases/:id", requireScope(models.ScopeRead), s.getCase)
	v1.PUT("/cases/:id", requireScope(models.ScopeWrite), s.updateCase)
	v1.DELETE("/cases/:id", requireScope(models.ScopeWrite), s.deleteCase)

	v1.POST("/runs", requireScope(models.ScopeExecute), s.createRun)
	v1.GET("/runs", requireScope(models.ScopeRead), s.listRuns)
	v1.GET("/runs/:id", requireScope(models.ScopeRead), s.getRun)
	v1.GET("/runs/:id/results", requireScope(models.ScopeRead), s.listResults)
	v1.POST("/runs/:id/cancel", requireScope(models.ScopeExecute), s.cancelRun)

	v1.GET("/compare", requireScope(models.ScopeRead), s.compareRuns)
	v1.GET("/dashboard", requireScope(models.ScopeRead), s.dashboard)

	return router
}

// health reports process and database health.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
