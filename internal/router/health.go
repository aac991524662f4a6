package router

import (
	"talentops/internal/handler"

	"github.com/gin-gonic/gin"
)

// HealthRouter probe 路由掛在 engine 根，不經過 auth
type HealthRouter struct {
	health *handler.HealthHandler
}

func NewHealthRouter(health *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{health: health}
}

func (r *HealthRouter) RegisterHealthRoutes(engine *gin.Engine) {
	engine.GET("/health-check", r.health.Liveness)

	probes := engine.Group("/health")
	probes.GET("/liveness", r.health.Liveness)
	probes.GET("/readiness", r.health.Readiness)
}
