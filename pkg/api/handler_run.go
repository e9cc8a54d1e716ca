package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/models"
)

// createRun persists a pending run and starts it asynchronously; the
// pending run is returned immediately.
func (s *Server) createRun(c *gin.Context) {
	principal := principalFrom(c)
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Trigger == "" {
		req.Trigger = "api"
	}

	created, err := s.orch.CreateRun(c.Request.Context(), principal.ProjectID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.orch.Start(c.Request.Context(), principal.ProjectID, created.ID)
	c.JSON(http.StatusAccepted, created)
}

func (s *Server) listRuns(c *gin.Context) {
	principal := principalFrom(c)

	params := models.ListRunsParams{
		SuiteID: c.Query("suite_id"),
		Status:  c.Query("status"),
	}
	var err error
	if params.Limit, err = intQuery(c, "limit", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if params.Offset, err = intQuery(c, "offset", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	runs, total, err := s.runs.ListRuns(c.Request.Context(), principal.ProjectID, params)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ListRunsResponse{
		Runs:       runs,
		TotalCount: total,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

func (s *Server) getRun(c *gin.Context) {
	principal := principalFrom(c)
	rn, err := s.runs.GetRun(c.Request.Context(), principal.ProjectID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rn)
}

func (s *Server) listResults(c *gin.Context) {
	principal := principalFrom(c)
	failedOnly := c.Query("failed_only") == "true"
	results, err := s.runs.ListResults(c.Request.Context(), principal.ProjectID, c.Param("id"), failedOnly)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) cancelRun(c *gin.Context) {
	principal := principalFrom(c)
	cancelled, err := s.orch.CancelRun(c.Request.Context(), principal.ProjectID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
