package routes

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/authz"
	"estatecrm/internal/handlers"
	"estatecrm/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	leadHandler *handlers.LeadHandler,
	actionHandler *handlers.ActionHandler,
	unitHandler *handlers.UnitHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// USERS (admin/management)
	users := r.Group("/users", middleware.RequireRoles(authz.RoleAdmin, authz.RoleManagement))
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("/", leadHandler.Create)
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.POST("/:id/stage", leadHandler.ChangeStage)
		leads.POST("/stage/bulk", leadHandler.ChangeStageBulk)
		leads.GET("/:id/history", leadHandler.History)
		leads.POST("/:id/assign",
			middleware.RequireRoles(authz.RoleAdmin, authz.RoleManagement, authz.RoleTeamLead),
			leadHandler.Assign)
	}

	// ACTIONS
	actions := r.Group("/actions",
		middleware.RequireRoles(authz.RoleSales, authz.RoleTeamLead, authz.RoleManagement, authz.RoleAdmin, authz.RoleAudit),
	)
	{
		actions.GET("/", actionHandler.List)
		actions.GET("/due", actionHandler.ListDue)
		actions.GET("/:id", actionHandler.GetByID)
		actions.POST("/:id/status", actionHandler.UpdateStatus)
		actions.DELETE("/:id", actionHandler.Delete)
	}

	// INVENTORY
	units := r.Group("/units")
	{
		units.GET("/", unitHandler.List)
		units.POST("/",
			middleware.RequireRoles(authz.RoleAdmin, authz.RoleManagement),
			unitHandler.Create)
		units.POST("/:id/availability",
			middleware.RequireRoles(authz.RoleAdmin, authz.RoleManagement),
			unitHandler.SetAvailability)
	}

	// REPORTS (audit/lead/mgmt/admin)
	reports := r.Group("/reports",
		middleware.RequireRoles(authz.RoleAudit, authz.RoleTeamLead, authz.RoleManagement, authz.RoleAdmin),
	)
	{
		reports.GET("/pipeline", reportHandler.PipelineSummary)
		reports.GET("/pipeline/pdf", reportHandler.PipelinePDF)
	}

	return r
}
