package database

import (
	"context"
	"errors"
	"time"

	"talentops/internal/core"
	"talentops/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound 各儲存實作一律以此回報查無資料
	ErrNotFound = errors.New("record not found")
	// ErrScopeLocked 同一快照 scope 已有其他寫入者持有鎖
	ErrScopeLocked = errors.New("snapshot scope is locked")
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	// ListByReportTo 直屬 leadID 的成員，不含 lead 本人
	ListByReportTo(ctx context.Context, leadID primitive.ObjectID) ([]*model.Employee, error)
	ListByRoles(ctx context.Context, roles ...core.EmployeeRole) ([]*model.Employee, error)
}

type RequirementRepository interface {
	Create(ctx context.Context, requirement *model.Requirement) (*model.Requirement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Requirement, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.RequirementAssignment) (*model.RequirementAssignment, error)
	ListActiveByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]*model.RequirementAssignment, error)
}

type SubmissionRepository interface {
	// Create 寫入前推得 submittedOn，submittedAt 缺漏時回傳 model.ErrMissingSubmittedAt
	Create(ctx context.Context, submission *model.ResumeSubmission) (*model.ResumeSubmission, error)
	CountByRecruiterOnDate(ctx context.Context, recruiterID primitive.ObjectID, date core.CalendarDate) (int, error)
}

type TargetMappingRepository interface {
	Create(ctx context.Context, mapping *model.TargetMapping) (*model.TargetMapping, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.TargetMapping, error)
	ListByTeamLead(ctx context.Context, teamLeadID primitive.ObjectID) ([]*model.TargetMapping, error)
	ListByTeamMember(ctx context.Context, teamMemberID primitive.ObjectID) ([]*model.TargetMapping, error)
	UpdateAchievement(ctx context.Context, id primitive.ObjectID, achievement Achievement) (*model.TargetMapping, error)
}

// Achievement nil 欄位不更新
type Achievement struct {
	TargetAchieved *float64
	Incentives     *float64
	Closures       *int
}

// SnapshotKey 快照唯一鍵；ScopeID 為 nil 時只比對 null
type SnapshotKey struct {
	Date      core.CalendarDate
	ScopeType core.ScopeType
	ScopeID   *primitive.ObjectID
}

type SnapshotRange struct {
	Start     core.CalendarDate
	End       core.CalendarDate
	ScopeType core.ScopeType
	ScopeID   *primitive.ObjectID
}

type SnapshotRepository interface {
	// Upsert 依唯一鍵更新或新增，回傳寫入後的完整資料
	Upsert(ctx context.Context, snapshot *model.DailyMetricsSnapshot) (*model.DailyMetricsSnapshot, error)
	Get(ctx context.Context, key SnapshotKey) (*model.DailyMetricsSnapshot, error)
	// ListByDateRange 含頭尾，日期新到舊
	ListByDateRange(ctx context.Context, query SnapshotRange) ([]*model.DailyMetricsSnapshot, error)
}

// ScopeLocker 快照寫入鎖；已被持有時回傳 ErrScopeLocked
type ScopeLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

// Pinger readiness 檢查；記憶體儲存不需要
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repositories 啟動時依 app.STORAGE 組裝一次，引擎不感知實際儲存
type Repositories struct {
	Employees      EmployeeRepository
	Requirements   RequirementRepository
	Assignments    AssignmentRepository
	Submissions    SubmissionRepository
	TargetMappings TargetMappingRepository
	Snapshots      SnapshotRepository
	Pinger         Pinger
}

// SameScopeID nil 只等於 nil
func SameScopeID(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
