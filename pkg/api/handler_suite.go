package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/models"
)

func (s *Server) listSuites(c *gin.Context) {
	principal := principalFrom(c)
	suites, err := s.suites.ListSuites(c.Request.Context(), principal.ProjectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suites": suites})
}

func (s *Server) createSuite(c *gin.Context) {
	principal := principalFrom(c)
	var req models.CreateSuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	created, err := s.suites.CreateSuite(c.Request.Context(), principal.ProjectID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getSuite(c *gin.Context) {
	principal := principalFrom(c)
	suite, err := s.suites.GetSuite(c.Request.Context(), principal.ProjectID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suite)
}

func (s *Server) updateSuite(c *gin.Context) {
	principal := principalFrom(c)
	var req models.UpdateSuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	updated, err := s.suites.UpdateSuite(c.Request.Context(), principal.ProjectID, c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteSuite(c *gin.Context) {
	principal := principalFrom(c)
	if err := s.suites.DeleteSuite(c.Request.Context(), principal.ProjectID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
