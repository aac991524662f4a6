package dto

import (
	"time"

	"talentops/internal/core"
)

// QuarterSummaryDto 同一季度（quarter-year）加總後的目標與實績
type QuarterSummaryDto struct {
	Key            string             `json:"key"` // 例如 Q3-2025
	Quarter        core.Quarter       `json:"quarter"`
	Year           int                `json:"year"`
	MinimumTarget  float64            `json:"minimumTarget"`
	TargetAchieved float64            `json:"targetAchieved"`
	Incentives     float64            `json:"incentives"`
	Closures       int                `json:"closures"`
	Status         core.QuarterStatus `json:"status"`
	IsCurrent      bool               `json:"isCurrent"`
}

// TargetSummaryDto CurrentQuarter 一定存在；AllQuarters 只含有資料的季度，新到舊
type TargetSummaryDto struct {
	PersonID       string              `json:"personId"`
	Perspective    string              `json:"perspective"`
	CurrentQuarter QuarterSummaryDto   `json:"currentQuarter"`
	AllQuarters    []QuarterSummaryDto `json:"allQuarters"`
}

// 建立季度目標（admin）
type CreateTargetMappingDto struct {
	TeamLeadID     string  `json:"teamLeadId" binding:"required,object_id"`
	TeamMemberID   string  `json:"teamMemberId" binding:"required,object_id"`
	Quarter        string  `json:"quarter" binding:"required,quarter"`
	Year           int     `json:"year" binding:"required,gte=2000"`
	MinimumTarget  float64 `json:"minimumTarget" binding:"gte=0"`
	TargetAchieved float64 `json:"targetAchieved" binding:"gte=0"`
	Incentives     float64 `json:"incentives" binding:"gte=0"`
	Closures       int     `json:"closures" binding:"gte=0"`
}

func (CreateTargetMappingDto) GetMessages() map[string]string {
	return map[string]string{
		"TeamLeadID.required":    "teamLeadId is required",
		"TeamLeadID.object_id":   "teamLeadId must be a 24-char hex id",
		"TeamMemberID.required":  "teamMemberId is required",
		"TeamMemberID.object_id": "teamMemberId must be a 24-char hex id",
		"Quarter.quarter":        "quarter must be one of Q1, Q2, Q3, Q4",
		"Year.gte":               "year must be 2000 or later",
	}
}

// 更新實績；未帶的欄位不變
type RecordAchievementDto struct {
	TargetAchieved *float64 `json:"targetAchieved,omitempty" binding:"omitempty,gte=0"`
	Incentives     *float64 `json:"incentives,omitempty" binding:"omitempty,gte=0"`
	Closures       *int     `json:"closures,omitempty" binding:"omitempty,gte=0"`
}

func (dto RecordAchievementDto) IsEmpty() bool {
	return dto.TargetAchieved == nil && dto.Incentives == nil && dto.Closures == nil
}

type TargetMappingResponseDto struct {
	ID             string       `json:"id"`
	TeamLeadID     string       `json:"teamLeadId"`
	TeamMemberID   string       `json:"teamMemberId"`
	Quarter        core.Quarter `json:"quarter"`
	Year           int          `json:"year"`
	MinimumTarget  float64      `json:"minimumTarget"`
	TargetAchieved float64      `json:"targetAchieved"`
	Incentives     float64      `json:"incentives"`
	Closures       int          `json:"closures"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
