package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
)

type calculateRequest struct {
	// Enrollment counts keyed by age group ID.
	Enrollments map[string]int `json:"enrollments" binding:"required"`
}

func (s *Server) handleCalculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	for id, count := range req.Enrollments {
		if count < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "enrollment counts must not be negative",
				"group": id,
			})
			return
		}
	}

	result, err := services.CalculateStaffing(c.Request.Context(), s.database, s.logger, req.Enrollments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calculationsTotal.Inc()
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDashboard(c *gin.Context) {
	dashboard, err := services.BuildDashboard(c.Request.Context(), s.database, s.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
