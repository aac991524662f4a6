package handler

import (
	"net/http"

	"talentops/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler k8s probe 用，不經過統一回應信封
type HealthHandler struct {
	logger *zap.Logger
	health *service.HealthService
}

func NewHealthHandler(logger *zap.Logger, health *service.HealthService) *HealthHandler {
	return &HealthHandler{logger: logger, health: health}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if !h.health.IsLive() {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "dead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.health.Readiness(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
