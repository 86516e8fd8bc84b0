package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

type fixedExpenseRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required,oneof=utility lease professional contract"`
	MonthlyAmount float64 `json:"monthly_amount" binding:"required,gt=0"`
	Description   string  `json:"description"`
	Active        *bool   `json:"active"`
}

func (r fixedExpenseRequest) record(id string) db.FixedExpense {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.FixedExpense{
		ID:            id,
		Name:          r.Name,
		Category:      r.Category,
		MonthlyAmount: r.MonthlyAmount,
		Description:   r.Description,
		Active:        active,
	}
}

func (s *Server) handleExpenseSummary(c *gin.Context) {
	summary, err := services.SummarizeExpenses(c.Request.Context(), s.database, s.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleListFixedExpenses(c *gin.Context) {
	expenses, err := s.database.GetFixedExpenses(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if expenses == nil {
		expenses = make([]db.FixedExpense, 0)
	}
	c.JSON(http.StatusOK, expenses)
}

func (s *Server) handleCreateFixedExpense(c *gin.Context) {
	var req fixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense := req.record(uuid.NewString())
	if err := s.database.InsertFixedExpense(c.Request.Context(), &expense); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (s *Server) handleUpdateFixedExpense(c *gin.Context) {
	var req fixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense := req.record(c.Param("id"))
	if err := s.database.UpdateFixedExpense(c.Request.Context(), &expense); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (s *Server) handleDeleteFixedExpense(c *gin.Context) {
	if err := s.database.DeleteFixedExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type perChildCostRequest struct {
	Name        string  `json:"name" binding:"required"`
	Band        string  `json:"band" binding:"required,oneof=infant child"`
	Schedule    string  `json:"schedule" binding:"required,oneof=core extended"`
	MonthlyRate float64 `json:"monthly_rate" binding:"required,gt=0"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}

func (r perChildCostRequest) record(id string) db.PerChildCost {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return db.PerChildCost{
		ID:          id,
		Name:        r.Name,
		Band:        r.Band,
		Schedule:    r.Schedule,
		MonthlyRate: r.MonthlyRate,
		Description: r.Description,
		Active:      active,
	}
}

func (s *Server) handleListPerChildCosts(c *gin.Context) {
	costs, err := s.database.GetPerChildCosts(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if costs == nil {
		costs = make([]db.PerChildCost, 0)
	}
	c.JSON(http.StatusOK, costs)
}

func (s *Server) handleCreatePerChildCost(c *gin.Context) {
	var req perChildCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cost := req.record(uuid.NewString())
	if err := s.database.InsertPerChildCost(c.Request.Context(), &cost); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cost)
}

func (s *Server) handleUpdatePerChildCost(c *gin.Context) {
	var req perChildCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cost := req.record(c.Param("id"))
	if err := s.database.UpdatePerChildCost(c.Request.Context(), &cost); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, cost)
}

func (s *Server) handleDeletePerChildCost(c *gin.Context) {
	if err := s.database.DeletePerChildCost(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
