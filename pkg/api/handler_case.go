package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/models"
)

func (s *Server) listCases(c *gin.Context) {
	principal := principalFrom(c)
	cases, err := s.suites.ListCases(c.Request.Context(), principal.ProjectID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases})
}

func (s *Server) createCase(c *gin.Context) {
	principal := principalFrom(c)
	var req models.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	created, err := s.suites.CreateCase(c.Request.Context(), principal.ProjectID, c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getCase(c *gin.Context) {
	principal := principalFrom(c)
	tc, err := s.suites.GetCase(c.Request.Context(), principal.ProjectID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}

func (s *Server) updateCase(c *gin.Context) {
	principal := principalFrom(c)
	var req models.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	updated, err := s.suites.UpdateCase(c.Request.Context(), principal.ProjectID, c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCase(c *gin.Context) {
	principal := principalFrom(c)
	if err := s.suites.DeleteCase(c.Request.Context(), principal.ProjectID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
