package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	if s.cfg.MetricsEnabled {
		s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := s.engine.Group("/api")
	{
		api.GET("/dashboard", s.handleDashboard)
		api.POST("/calculate", s.handleCalculate)
		api.GET("/projections", s.handleProjections)
		api.GET("/projections/sensitivity", s.handleProjectionsSensitivity)

		groups := api.Group("/age-groups")
		{
			groups.GET("", s.handleListAgeGroups)
			groups.POST("", s.handleCreateAgeGroup)
			groups.GET("/:id", s.handleGetAgeGroup)
			groups.PUT("/:id", s.handleUpdateAgeGroup)
			groups.DELETE("/:id", s.handleDeleteAgeGroup)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", s.handleListStaff)
			staff.POST("", s.handleCreateStaff)
			staff.GET("/:id", s.handleGetStaff)
			staff.PUT("/:id", s.handleUpdateStaff)
			staff.POST("/:id/toggle", s.handleToggleStaff)
			staff.DELETE("/:id", s.handleDeleteStaff)
		}

		pricing := api.Group("/pricing")
		{
			pricing.GET("/plans", s.handleListPlans)
			pricing.POST("/plans", s.handleCreatePlan)
			pricing.PUT("/plans/:id", s.handleUpdatePlan)
			pricing.DELETE("/plans/:id", s.handleDeletePlan)

			pricing.GET("/add-ons", s.handleListAddOns)
			pricing.POST("/add-ons", s.handleCreateAddOn)
			pricing.PUT("/add-ons/:id", s.handleUpdateAddOn)
			pricing.DELETE("/add-ons/:id", s.handleDeleteAddOn)

			pricing.GET("/fees", s.handleListFees)
			pricing.POST("/fees", s.handleCreateFee)
			pricing.PUT("/fees/:id", s.handleUpdateFee)
			pricing.DELETE("/fees/:id", s.handleDeleteFee)

			pricing.GET("/discounts", s.handleListDiscounts)
			pricing.POST("/discounts", s.handleCreateDiscount)
			pricing.PUT("/discounts/:id", s.handleUpdateDiscount)
			pricing.DELETE("/discounts/:id", s.handleDeleteDiscount)

			pricing.POST("/quote", s.handleQuote)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("/summary", s.handleExpenseSummary)

			expenses.GET("/fixed", s.handleListFixedExpenses)
			expenses.POST("/fixed", s.handleCreateFixedExpense)
			expenses.PUT("/fixed/:id", s.handleUpdateFixedExpense)
			expenses.DELETE("/fixed/:id", s.handleDeleteFixedExpense)

			expenses.GET("/per-child", s.handleListPerChildCosts)
			expenses.POST("/per-child", s.handleCreatePerChildCost)
			expenses.PUT("/per-child/:id", s.handleUpdatePerChildCost)
			expenses.DELETE("/per-child/:id", s.handleDeletePerChildCost)
		}

		capacity := api.Group("/capacity")
		{
			capacity.GET("/settings", s.handleGetCapacitySettings)
			capacity.PUT("/settings", s.handleUpdateCapacitySettings)
			capacity.GET("/plan", s.handleCapacityPlan)
			capacity.POST("/daily-labor", s.handleDailyLabor)
		}
	}
}
