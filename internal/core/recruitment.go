package core

import "strings"

// Criticality 職缺緊急程度
type Criticality string

const (
	CriticalityLow    Criticality = "LOW"
	CriticalityMedium Criticality = "MEDIUM"
	CriticalityHigh   Criticality = "HIGH"
)

var Criticalities = []Criticality{CriticalityHigh, CriticalityMedium, CriticalityLow}

// Normalize 去除空白並轉為大寫，未知值原樣保留（交由 target policy 判定）
func (c Criticality) Normalize() Criticality {
	return Criticality(strings.ToUpper(strings.TrimSpace(string(c))))
}

// Toughness 職缺招募難度
type Toughness string

const (
	ToughnessEasy   Toughness = "Easy"
	ToughnessMedium Toughness = "Medium"
	ToughnessTough  Toughness = "Tough"
)

var Toughnesses = []Toughness{ToughnessEasy, ToughnessMedium, ToughnessTough}

func (t Toughness) Normalize() Toughness {
	trimmed := strings.TrimSpace(string(t))
	for _, known := range Toughnesses {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return Toughness(trimmed)
}

// AssignmentStatus 職缺指派狀態，只有 active 會列入每日需求
type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentInactive AssignmentStatus = "inactive"
)

// EmployeeRole 員工角色
type EmployeeRole string

const (
	RoleAdmin      EmployeeRole = "admin"
	RoleTeamLeader EmployeeRole = "team_leader"
	RoleRecruiter  EmployeeRole = "recruiter"
	RoleClient     EmployeeRole = "client"
)

// DeliveryRoles 組織彙總時納入計算的角色
var DeliveryRoles = []EmployeeRole{RoleRecruiter, RoleTeamLeader}

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// ScopeType 快照的彙總層級
type ScopeType string

const (
	ScopeRecruiter    ScopeType = "recruiter"
	ScopeTeam         ScopeType = "team"
	ScopeOrganization ScopeType = "organization"
)

func (s ScopeType) Valid() bool {
	switch s {
	case ScopeRecruiter, ScopeTeam, ScopeOrganization:
		return true
	}
	return false
}

// RequiresScopeID organization 層級沒有 scopeId，其餘必填
func (s ScopeType) RequiresScopeID() bool {
	return s == ScopeRecruiter || s == ScopeTeam
}

// TargetPerspective 查詢季度目標時以主管或成員身分篩選
type TargetPerspective string

const (
	PerspectiveLead   TargetPerspective = "lead"
	PerspectiveMember TargetPerspective = "member"
)

type StorageDriver string

const (
	StorageMongo  StorageDriver = "mongo"
	StorageMemory StorageDriver = "memory"
)
