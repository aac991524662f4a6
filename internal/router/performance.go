package router

import (
	"talentops/internal/core"
	"talentops/internal/handler"
	"talentops/internal/middleware"

	"github.com/gin-gonic/gin"
)

type PerformanceRouter struct {
	auth               *middleware.Auth
	performanceHandler *handler.PerformanceHandler
	targetHandler      *handler.TargetHandler
}

func NewPerformanceRouter(
	auth *middleware.Auth,
	performanceHandler *handler.PerformanceHandler,
	targetHandler *handler.TargetHandler,
) *PerformanceRouter {
	return &PerformanceRouter{
		auth:               auth,
		performanceHandler: performanceHandler,
		targetHandler:      targetHandler,
	}
}

func (pr *PerformanceRouter) RegisterRoutes(r *gin.Engine) {
	adminOnly := middleware.RequireRole(core.RoleAdmin)

	g := r.Group("/performance", pr.auth.Handler())
	{
		g.GET("/recruiters/:employeeID/daily", pr.performanceHandler.RecruiterDaily)
		g.GET("/teams/:employeeID/daily", pr.performanceHandler.TeamDaily)
		g.GET("/organization/daily", pr.performanceHandler.OrganizationDaily)
		g.GET("/target-policy", pr.performanceHandler.TargetPolicy)

		g.GET("/snapshots", pr.performanceHandler.ListSnapshots)
		g.POST("/snapshots/capture", adminOnly, pr.performanceHandler.CaptureSnapshots)

		g.GET("/me/targets", pr.targetHandler.MySummary)
		g.GET("/targets/:employeeID/summary", pr.targetHandler.Summary)
		g.POST("/targets", adminOnly, pr.targetHandler.Create)
		// admin 或該目標的主管，於 handler 內判斷
		g.PATCH("/targets/:mappingID/achievement",
			middleware.RequireRole(core.RoleAdmin, core.RoleTeamLeader),
			pr.targetHandler.RecordAchievement,
		)
	}
}
