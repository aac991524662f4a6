package handler

import (
	"fmt"

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

type PerformanceHandler struct {
	trace           *telemetry.Trace
	deliveryService *service.DeliveryService
	snapshotService *service.SnapshotService
	targetPolicy    *service.TargetPolicy
}

func NewPerformanceHandler(
	trace *telemetry.Trace,
	deliveryService *service.DeliveryService,
	snapshotService *service.SnapshotService,
	targetPolicy *service.TargetPolicy,
) *PerformanceHandler {
	return &PerformanceHandler{
		trace:           trace,
		deliveryService: deliveryService,
		snapshotService: snapshotService,
		targetPolicy:    targetPolicy,
	}
}

// RecruiterDaily 招募專員單日交付
// @Summary 取得招募專員單日交付數
// @Tags Performance
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param date query string false "YYYY-MM-DD，預設今天"
// @Success 200 {object} dto.DailyMetricsResponseDto
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /performance/recruiters/{employeeID}/daily [get]
func (h *PerformanceHandler) RecruiterDaily(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	date, err := validate.ParseDateQuery(c, "date", core.Today())
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	metrics, err := h.deliveryService.RecruiterDaily(ctx, id, date)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, dailyResponse(date, core.ScopeRecruiter, &id, metrics))
}

// TeamDaily 團隊單日交付（主管與直屬成員）
// @Summary 取得團隊單日交付數
// @Tags Performance
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Team lead ID"
// @Param date query string false "YYYY-MM-DD，預設今天"
// @Success 200 {object} dto.DailyMetricsResponseDto
// @Failure 400 {object} map[string]string
// @Router /performance/teams/{employeeID}/daily [get]
func (h *PerformanceHandler) TeamDaily(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	date, err := validate.ParseDateQuery(c, "date", core.Today())
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	metrics, err := h.deliveryService.TeamDaily(ctx, id, date)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, dailyResponse(date, core.ScopeTeam, &id, metrics))
}

// OrganizationDaily 全公司單日交付
// @Summary 取得全公司單日交付數
// @Tags Performance
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD，預設今天"
// @Success 200 {object} dto.DailyMetricsResponseDto
// @Failure 400 {object} map[string]string
// @Router /performance/organization/daily [get]
func (h *PerformanceHandler) OrganizationDaily(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	date, err := validate.ParseDateQuery(c, "date", core.Today())
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	metrics, err := h.deliveryService.OrganizationDaily(ctx, date)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, dailyResponse(date, core.ScopeOrganization, nil, metrics))
}

// ListSnapshots 依日期區間查詢快照
// @Summary 查詢每日快照
// @Tags Performance-Snapshot
// @Security BearerAuth
// @Produce json
// @Param scopeType query string true "recruiter / team / organization"
// @Param scopeId query string false "organization 以外必填"
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {array} dto.SnapshotResponseDto
// @Failure 400 {object} map[string]string
// @Router /performance/snapshots [get]
func (h *PerformanceHandler) ListSnapshots(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.SnapshotQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	scopeType, scopeID, err := parseScope(query.ScopeType, query.ScopeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	// binding 已驗證格式
	start := core.MustParseCalendarDate(query.StartDate)
	finish := core.MustParseCalendarDate(query.EndDate)

	snapshots, err := h.snapshotService.ListByDateRange(ctx, start, finish, scopeType, scopeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, snapshots)
}

// CaptureSnapshots 立即擷取快照；未帶 scopeType 時擷取全部 scope
// @Summary 擷取每日快照
// @Tags Performance-Snapshot
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD，預設今天"
// @Param scopeType query string false "recruiter / team / organization"
// @Param scopeId query string false "organization 以外必填"
// @Success 200 {object} dto.CaptureResultDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /performance/snapshots/capture [post]
func (h *PerformanceHandler) CaptureSnapshots(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	date, err := validate.ParseDateQuery(c, "date", core.Today())
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	if c.Query("scopeType") == "" {
		result, err := h.snapshotService.CaptureAll(ctx, date)
		if err != nil {
			end(err)
			if result == nil {
				response.AbortWithError(c, toAppError(err))
				return
			}
		}
		response.Success(c, result)
		return
	}

	scopeType, scopeID, err := parseScope(c.Query("scopeType"), c.Query("scopeId"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var metrics *dto.DailyMetrics
	switch scopeType {
	case core.ScopeRecruiter:
		metrics, err = h.snapshotService.CaptureRecruiter(ctx, date, *scopeID)
	case core.ScopeTeam:
		metrics, err = h.snapshotService.CaptureTeam(ctx, date, *scopeID)
	default:
		metrics, err = h.snapshotService.CaptureOrganization(ctx, date)
	}
	if err != nil {
		end(err)
		response.AbortWithError(c, toAppError(err))
		return
	}
	response.Success(c, dailyResponse(date, scopeType, scopeID, metrics))
}

// TargetPolicy 每日履歷目標政策表
// @Summary 取得每日履歷目標政策表
// @Tags Performance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TargetPolicyDto
// @Router /performance/target-policy [get]
func (h *PerformanceHandler) TargetPolicy(c *gin.Context) {
	response.Success(c, h.targetPolicy.Table())
}

// parseScope scopeId 只在 recruiter / team 時必填，organization 一律忽略
func parseScope(rawType, rawID string) (core.ScopeType, *primitive.ObjectID, error) {
	scopeType := core.ScopeType(rawType)
	if !scopeType.Valid() {
		return "", nil, cErr.InvalidScope(fmt.Sprintf("unknown scopeType %q", rawType))
	}
	if !scopeType.RequiresScopeID() {
		if rawID != "" {
			return "", nil, cErr.InvalidScope("organization scope does not take scopeId")
		}
		return scopeType, nil, nil
	}
	if rawID == "" {
		return "", nil, cErr.InvalidScope(fmt.Sprintf("scopeId is required for %s scope", scopeType))
	}
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return "", nil, cErr.InvalidScope(fmt.Sprintf("invalid scopeId %q", rawID))
	}
	return scopeType, &id, nil
}

func dailyResponse(date core.CalendarDate, scopeType core.ScopeType, scopeID *primitive.ObjectID, metrics *dto.DailyMetrics) *dto.DailyMetricsResponseDto {
	res := &dto.DailyMetricsResponseDto{
		Date:         date.String(),
		ScopeType:    scopeType,
		DailyMetrics: *metrics,
	}
	if scopeID != nil {
		hex := scopeID.Hex()
		res.ScopeID = &hex
	}
	return res
}
