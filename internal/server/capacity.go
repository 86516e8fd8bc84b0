package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

type capacitySettingsRequest struct {
	TotalChildren *int `json:"total_children" binding:"required,gte=0"`
	MaxCapacity   *int `json:"max_capacity" binding:"required,gt=0"`

	InfantPercent float64 `json:"infant_percent" binding:"gte=0,lte=100"`
	ChildPercent  float64 `json:"child_percent" binding:"gte=0,lte=100"`

	CorePercent     float64 `json:"core_percent" binding:"gte=0,lte=100"`
	ExtendedPercent float64 `json:"extended_percent" binding:"gte=0,lte=100"`

	FullPercent float64 `json:"full_percent" binding:"gte=0,lte=100"`
	MWFPercent  float64 `json:"mwf_percent" binding:"gte=0,lte=100"`
	TThPercent  float64 `json:"tth_percent" binding:"gte=0,lte=100"`
}

func (s *Server) handleGetCapacitySettings(c *gin.Context) {
	settings, err := s.database.GetCapacitySettings(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleUpdateCapacitySettings(c *gin.Context) {
	var req capacitySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings := &db.CapacitySettings{
		TotalChildren:   *req.TotalChildren,
		MaxCapacity:     *req.MaxCapacity,
		InfantPercent:   req.InfantPercent,
		ChildPercent:    req.ChildPercent,
		CorePercent:     req.CorePercent,
		ExtendedPercent: req.ExtendedPercent,
		FullPercent:     req.FullPercent,
		MWFPercent:      req.MWFPercent,
		TThPercent:      req.TThPercent,
	}

	// Reject mixes that cannot drive a distribution before persisting.
	if err := services.MixFromSettings(settings).Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if settings.TotalChildren > settings.MaxCapacity {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "total children must not exceed licensed capacity",
		})
		return
	}

	if err := s.database.UpdateCapacitySettings(c.Request.Context(), settings); err != nil {
		respondStoreError(c, err)
		return
	}

	s.logger.Info("Capacity settings updated",
		zap.Int("total_children", settings.TotalChildren),
		zap.Int("max_capacity", settings.MaxCapacity))
	c.JSON(http.StatusOK, settings)
}

type dailyLaborRequest struct {
	CoreInfants      int `json:"core_infants" binding:"gte=0"`
	CoreChildren     int `json:"core_children" binding:"gte=0"`
	ExtendedInfants  int `json:"extended_infants" binding:"gte=0"`
	ExtendedChildren int `json:"extended_children" binding:"gte=0"`
}

// handleDailyLabor costs out a single operating day from ad-hoc attendance
// counts, at rates averaged from the available roster.
func (s *Server) handleDailyLabor(c *gin.Context) {
	var req dailyLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff, err := s.database.GetStaffMembers(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	var available []model.StaffMember
	for _, rec := range staff {
		m := rec.ToModel()
		if m.Available {
			available = append(available, m)
		}
	}

	day := capacity.DailyLabor(
		req.CoreInfants, req.CoreChildren,
		req.ExtendedInfants, req.ExtendedChildren,
		capacity.RatesFromRoster(available),
	)
	c.JSON(http.StatusOK, day)
}

func (s *Server) handleCapacityPlan(c *gin.Context) {
	plan, err := services.PlanCapacity(c.Request.Context(), s.database, s.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	capacityPlansTotal.Inc()
	c.JSON(http.StatusOK, plan)
}
