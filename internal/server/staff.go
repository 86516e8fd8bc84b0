package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

type staffRequest struct {
	Name                      string  `json:"name" binding:"required"`
	PermitLevel               string  `json:"permit_level" binding:"required"`
	Available                 *bool   `json:"available"`
	HourlyRate                float64 `json:"hourly_rate" binding:"gte=0"`
	ECEUnits                  int     `json:"ece_units" binding:"gte=0"`
	HasInfantSpecialization   bool    `json:"has_infant_specialization"`
	FullyQualified            bool    `json:"fully_qualified"`
	IsDirector                bool    `json:"is_director"`
	DirectorCountsTowardRatio bool    `json:"director_counts_toward_ratio"`
}

func (r staffRequest) record(id string) (db.StaffMember, error) {
	if !model.PermitLevel(r.PermitLevel).IsValid() {
		return db.StaffMember{}, fmt.Errorf("unknown permit level %q", r.PermitLevel)
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return db.StaffMember{
		ID:                        id,
		Name:                      r.Name,
		PermitLevel:               r.PermitLevel,
		Available:                 available,
		HourlyRate:                r.HourlyRate,
		ECEUnits:                  r.ECEUnits,
		HasInfantSpecialization:   r.HasInfantSpecialization,
		FullyQualified:            r.FullyQualified,
		IsDirector:                r.IsDirector,
		DirectorCountsTowardRatio: r.DirectorCountsTowardRatio,
	}, nil
}

func (s *Server) handleListStaff(c *gin.Context) {
	staff, err := s.database.GetStaffMembers(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if staff == nil {
		staff = make([]db.StaffMember, 0)
	}
	c.JSON(http.StatusOK, staff)
}

func (s *Server) handleGetStaff(c *gin.Context) {
	member, err := s.database.GetStaffMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (s *Server) handleCreateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := req.record(uuid.NewString())
	if err != nil {
		respondBindError(c, err)
		return
	}
	if err := s.database.InsertStaffMember(c.Request.Context(), &member); err != nil {
		respondStoreError(c, err)
		return
	}

	s.logger.Info("Staff member created",
		zap.String("id", member.ID),
		zap.String("name", member.Name),
		zap.String("permit_level", member.PermitLevel))
	c.JSON(http.StatusCreated, member)
}

func (s *Server) handleUpdateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := req.record(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}
	if err := s.database.UpdateStaffMember(c.Request.Context(), &member); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (s *Server) handleToggleStaff(c *gin.Context) {
	member, err := s.database.ToggleStaffAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.logger.Info("Staff availability toggled",
		zap.String("id", member.ID),
		zap.Bool("available", member.Available))
	c.JSON(http.StatusOK, member)
}

func (s *Server) handleDeleteStaff(c *gin.Context) {
	if err := s.database.DeleteStaffMember(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
