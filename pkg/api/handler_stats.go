package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/models"
)

func (s *Server) compareRuns(c *gin.Context) {
	principal := principalFrom(c)

	baseline := c.Query("baseline")
	candidate := c.Query("candidate")
	if baseline == "" || candidate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseline and candidate are required"})
		return
	}
	threshold := 0.05
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid threshold"})
			return
		}
		threshold = parsed
	}

	report, err := s.comparator.Compare(c.Request.Context(), principal.ProjectID, baseline, candidate, threshold)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) dashboard(c *gin.Context) {
	principal := principalFrom(c)

	var params models.DashboardParams
	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp, want RFC3339"})
			return
		}
		params.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp, want RFC3339"})
			return
		}
		params.To = &ts
	}

	stats, err := s.stats.Dashboard(c.Request.Context(), principal.ProjectID, params)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
