package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

type ageGroupRequest struct {
	Name           string                `json:"name" binding:"required"`
	MinAgeMonths   *int                  `json:"min_age_months" binding:"required,gte=0"`
	MaxAgeMonths   int                   `json:"max_age_months" binding:"required,gt=0"`
	Ratio          int                   `json:"ratio" binding:"required,gt=0"`
	EnhancedRatios []model.EnhancedRatio `json:"enhanced_ratios"`
}

func (r ageGroupRequest) record(id string) db.AgeGroup {
	return db.AgeGroup{
		ID:             id,
		Name:           r.Name,
		MinAgeMonths:   *r.MinAgeMonths,
		MaxAgeMonths:   r.MaxAgeMonths,
		Ratio:          r.Ratio,
		EnhancedRatios: r.EnhancedRatios,
	}
}

func (s *Server) handleListAgeGroups(c *gin.Context) {
	groups, err := s.database.GetAgeGroups(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if groups == nil {
		groups = make([]db.AgeGroup, 0)
	}
	c.JSON(http.StatusOK, groups)
}

func (s *Server) handleGetAgeGroup(c *gin.Context) {
	group, err := s.database.GetAgeGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) handleCreateAgeGroup(c *gin.Context) {
	var req ageGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group := req.record(uuid.NewString())
	if err := s.database.InsertAgeGroup(c.Request.Context(), &group); err != nil {
		respondStoreError(c, err)
		return
	}

	s.logger.Info("Age group created", zap.String("id", group.ID), zap.String("name", group.Name))
	c.JSON(http.StatusCreated, group)
}

func (s *Server) handleUpdateAgeGroup(c *gin.Context) {
	var req ageGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group := req.record(c.Param("id"))
	if err := s.database.UpdateAgeGroup(c.Request.Context(), &group); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) handleDeleteAgeGroup(c *gin.Context) {
	if err := s.database.DeleteAgeGroup(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
