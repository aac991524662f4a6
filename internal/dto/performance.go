package dto

import (
	"time"

	"talentops/internal/core"
)

// DailyMetrics 單日交付結果；Defaulted 恆不為負
type DailyMetrics struct {
	Delivered        int `json:"delivered"`
	Defaulted        int `json:"defaulted"`
	Required         int `json:"required"`
	RequirementCount int `json:"requirementCount"`
}

// NewDailyMetrics 依 required 與 delivered 推得 defaulted
func NewDailyMetrics(delivered, required, requirementCount int) *DailyMetrics {
	return &DailyMetrics{
		Delivered:        delivered,
		Defaulted:        max(0, required-delivered),
		Required:         required,
		RequirementCount: requirementCount,
	}
}

// DailyMetricsResponseDto API 回應，附上查詢範圍
type DailyMetricsResponseDto struct {
	Date      string         `json:"date"`
	ScopeType core.ScopeType `json:"scopeType"`
	ScopeID   *string        `json:"scopeId"`
	DailyMetrics
}

// 快照查詢（query string）
type SnapshotQueryDto struct {
	ScopeType string `form:"scopeType" binding:"required,scope_type"`
	ScopeID   string `form:"scopeId" binding:"omitempty,object_id"`
	StartDate string `form:"startDate" binding:"required,calendar_date"`
	EndDate   string `form:"endDate" binding:"required,calendar_date"`
}

func (SnapshotQueryDto) GetMessages() map[string]string {
	return map[string]string{
		"ScopeType.required":      "scopeType is required",
		"ScopeType.scope_type":    "scopeType must be recruiter, team or organization",
		"ScopeID.object_id":       "scopeId must be a 24-char hex id",
		"StartDate.required":      "startDate is required",
		"StartDate.calendar_date": "startDate must be YYYY-MM-DD",
		"EndDate.required":        "endDate is required",
		"EndDate.calendar_date":   "endDate must be YYYY-MM-DD",
	}
}

type SnapshotResponseDto struct {
	ID               string         `json:"id"`
	Date             string         `json:"date"`
	ScopeType        core.ScopeType `json:"scopeType"`
	ScopeID          *string        `json:"scopeId"`
	Delivered        int            `json:"delivered"`
	Defaulted        int            `json:"defaulted"`
	RequirementCount int            `json:"requirementCount"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// CapturedScopeDto 單一 scope 的寫入結果
type CapturedScopeDto struct {
	ScopeType core.ScopeType `json:"scopeType"`
	ScopeID   *string        `json:"scopeId"`
	Status    string         `json:"status"` // written / locked / failed
	DailyMetrics
}

type CaptureResultDto struct {
	Date    string             `json:"date"`
	Written int                `json:"written"`
	Skipped int                `json:"skipped"`
	Failed  int                `json:"failed"`
	Scopes  []CapturedScopeDto `json:"scopes"`
}

// 政策表一列
type TargetPolicyRowDto struct {
	Criticality core.Criticality `json:"criticality"`
	Toughness   core.Toughness   `json:"toughness"`
	Required    int              `json:"required"`
}

type TargetPolicyDto struct {
	Rows    []TargetPolicyRowDto `json:"rows"`
	Default int                  `json:"default"`
	Strict  bool                 `json:"strict"`
}
