package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
)

func (s *Server) handleProjections(c *gin.Context) {
	projections, err := services.BuildProjections(c.Request.Context(), s.database, s.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projections)
}

func (s *Server) handleProjectionsSensitivity(c *gin.Context) {
	projections, err := services.BuildProjections(c.Request.Context(), s.database, s.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"base":        projections,
		"sensitivity": services.AnalyzeSensitivity(projections),
	})
}
