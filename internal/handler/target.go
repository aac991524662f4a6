package handler

import (
	"context"

	"talentops/internal/core"
	"talentops/internal/dto"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/pkg/response"
	"talentops/internal/service"
	"talentops/internal/telemetry"
	"talentops/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TargetHandler struct {
	trace                *telemetry.Trace
	targetSummaryService *service.TargetSummaryService
	targetMappingService *service.TargetMappingService
}

func NewTargetHandler(
	trace *telemetry.Trace,
	targetSummaryService *service.TargetSummaryService,
	targetMappingService *service.TargetMappingService,
) *TargetHandler {
	return &TargetHandler{
		trace:                trace,
		targetSummaryService: targetSummaryService,
		targetMappingService: targetMappingService,
	}
}

// Summary 指定員工的季度目標彙總
// @Summary 取得季度目標彙總
// @Tags Performance-Target
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param as query string false "lead / member，預設 member"
// @Success 200 {object} dto.TargetSummaryDto
// @Failure 400 {object} map[string]string
// @Router /performance/targets/{employeeID}/summary [get]
func (h *TargetHandler) Summary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	h.summary(c, ctx, id, end)
}

// MySummary 以 token 內的員工查詢
// @Summary 取得自己的季度目標彙總
// @Tags Performance-Target
// @Security BearerAuth
// @Produce json
// @Param as query string false "lead / member，預設 member"
// @Success 200 {object} dto.TargetSummaryDto
// @Failure 401 {object} map[string]string
// @Router /performance/me/targets [get]
func (h *TargetHandler) MySummary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, _, err := currentEmployee(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	h.summary(c, ctx, id, end)
}

func (h *TargetHandler) summary(c *gin.Context, ctx context.Context, id primitive.ObjectID, end func(error)) {
	perspective := core.TargetPerspective(c.DefaultQuery("as", string(core.PerspectiveMember)))
	if !validate.IsValidPerspective(string(perspective)) {
		err := cErr.BadRequestParams("as must be lead or member")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	summary, err := h.targetSummaryService.GetTargetSummary(ctx, id, perspective)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, summary)
}

// Create 建立季度目標
// @Summary 建立季度目標
// @Tags Performance-Target
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateTargetMappingDto true "季度目標"
// @Success 201 {object} dto.TargetMappingResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /performance/targets [post]
func (h *TargetHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateTargetMappingDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.targetMappingService.Create(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Create(c, res)
}

// RecordAchievement 更新實績；admin 或該目標的主管可操作
// @Summary 更新季度目標實績
// @Tags Performance-Target
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param mappingID path string true "Target mapping ID"
// @Param body body dto.RecordAchievementDto true "實績"
// @Success 200 {object} dto.TargetMappingResponseDto
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /performance/targets/{mappingID}/achievement [patch]
func (h *TargetHandler) RecordAchievement(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "mappingID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.RecordAchievementDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	callerID, role, err := currentEmployee(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if role != core.RoleAdmin {
		mapping, err := h.targetMappingService.GetByID(ctx, id)
		if err != nil {
			end(err)
			response.AbortWithError(c, toAppError(err))
			return
		}
		if mapping.TeamLeadID != callerID.Hex() {
			err := cErr.Forbidden("only admin or the team lead of this target may record achievement")
			end(err)
			response.AbortWithError(c, err)
			return
		}
	}

	res, err := h.targetMappingService.RecordAchievement(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, res)
}
