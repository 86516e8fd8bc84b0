package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

type planRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price" binding:"required,gt=0"`
	BillingPeriod string  `json:"billing_period" binding:"required,oneof=weekly monthly"`
	Schedule      string  `json:"schedule" binding:"omitempty,oneof=core extended"`
	Pattern       string  `json:"pattern" binding:"omitempty,oneof=full mwf tth"`
	Band          string  `json:"band" binding:"omitempty,oneof=infant child"`
	IsFixedPlan   bool    `json:"is_fixed_plan"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Active        *bool   `json:"active"`
}

func (r planRequest) record(id string) db.CorePlan {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.CorePlan{
		ID:            id,
		Name:          r.Name,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		BillingPeriod: r.BillingPeriod,
		Schedule:      r.Schedule,
		Pattern:       r.Pattern,
		Band:          r.Band,
		IsFixedPlan:   r.IsFixedPlan,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Active:        active,
	}
}

func (s *Server) handleListPlans(c *gin.Context) {
	plans, err := s.database.GetCorePlans(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if plans == nil {
		plans = make([]db.CorePlan, 0)
	}
	c.JSON(http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plan := req.record(uuid.NewString())
	if err := s.database.InsertCorePlan(c.Request.Context(), &plan); err != nil {
		respondStoreError(c, err)
		return
	}

	s.logger.Info("Core plan created", zap.String("id", plan.ID), zap.String("name", plan.Name))
	c.JSON(http.StatusCreated, plan)
}

func (s *Server) handleUpdatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plan := req.record(c.Param("id"))
	if err := s.database.UpdateCorePlan(c.Request.Context(), &plan); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(c *gin.Context) {
	if err := s.database.DeleteCorePlan(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addOnRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Pricing     string  `json:"pricing" binding:"required,oneof=per_day time_based one_time extended_care"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	MinutesUnit int     `json:"minutes_unit" binding:"gte=0"`
	Active      *bool   `json:"active"`
}

func (r addOnRequest) record(id string) db.AddOn {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.AddOn{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Pricing:     r.Pricing,
		Price:       r.Price,
		MinutesUnit: r.MinutesUnit,
		Active:      active,
	}
}

func (s *Server) handleListAddOns(c *gin.Context) {
	addOns, err := s.database.GetAddOns(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if addOns == nil {
		addOns = make([]db.AddOn, 0)
	}
	c.JSON(http.StatusOK, addOns)
}

func (s *Server) handleCreateAddOn(c *gin.Context) {
	var req addOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	addOn := req.record(uuid.NewString())
	if err := s.database.InsertAddOn(c.Request.Context(), &addOn); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

func (s *Server) handleUpdateAddOn(c *gin.Context) {
	var req addOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	addOn := req.record(c.Param("id"))
	if err := s.database.UpdateAddOn(c.Request.Context(), &addOn); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOn)
}

func (s *Server) handleDeleteAddOn(c *gin.Context) {
	if err := s.database.DeleteAddOn(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type feeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	FeeType     string  `json:"fee_type" binding:"required,oneof=registration materials deposit other"`
	Refundable  bool    `json:"refundable"`
	Active      *bool   `json:"active"`
}

func (r feeRequest) record(id string) db.OneTimeFee {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.OneTimeFee{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Amount:      r.Amount,
		FeeType:     r.FeeType,
		Refundable:  r.Refundable,
		Active:      active,
	}
}

func (s *Server) handleListFees(c *gin.Context) {
	fees, err := s.database.GetOneTimeFees(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if fees == nil {
		fees = make([]db.OneTimeFee, 0)
	}
	c.JSON(http.StatusOK, fees)
}

func (s *Server) handleCreateFee(c *gin.Context) {
	var req feeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fee := req.record(uuid.NewString())
	if err := s.database.InsertOneTimeFee(c.Request.Context(), &fee); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fee)
}

func (s *Server) handleUpdateFee(c *gin.Context) {
	var req feeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fee := req.record(c.Param("id"))
	if err := s.database.UpdateOneTimeFee(c.Request.Context(), &fee); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, fee)
}

func (s *Server) handleDeleteFee(c *gin.Context) {
	if err := s.database.DeleteOneTimeFee(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type discountRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=percentage fixed"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	AppliesTo   string  `json:"applies_to" binding:"required,oneof=core_plan add_ons total fees"`
	Conditions  string  `json:"conditions"`
	Active      *bool   `json:"active"`
}

func (r discountRequest) record(id string) db.Discount {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.Discount{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Amount:      r.Amount,
		AppliesTo:   r.AppliesTo,
		Conditions:  r.Conditions,
		Active:      active,
	}
}

func (s *Server) handleListDiscounts(c *gin.Context) {
	discounts, err := s.database.GetDiscounts(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if discounts == nil {
		discounts = make([]db.Discount, 0)
	}
	c.JSON(http.StatusOK, discounts)
}

func (s *Server) handleCreateDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	discount := req.record(uuid.NewString())
	if err := s.database.InsertDiscount(c.Request.Context(), &discount); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, discount)
}

func (s *Server) handleUpdateDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	discount := req.record(c.Param("id"))
	if err := s.database.UpdateDiscount(c.Request.Context(), &discount); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, discount)
}

func (s *Server) handleDeleteDiscount(c *gin.Context) {
	if err := s.database.DeleteDiscount(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleQuote(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := services.QuotePackage(c.Request.Context(), s.database, s.logger, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}
