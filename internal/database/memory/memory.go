// Package memory 以 mutex 保護的 map 實作 database 介面，供測試與 demo 模式使用
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store 持有所有集合；同一個 Store 的 repository 共用一把鎖
type Store struct {
	mu          sync.RWMutex
	now         func() time.Time
	employees   map[primitive.ObjectID]model.Employee
	requirement map[primitive.ObjectID]model.Requirement
	assignments map[primitive.ObjectID]model.RequirementAssignment
	submissions map[primitive.ObjectID]model.ResumeSubmission
	mappings    map[primitive.ObjectID]model.TargetMapping
	snapshots   map[snapshotKey]model.DailyMetricsSnapshot
}

type snapshotKey struct {
	date      core.CalendarDate
	scopeType core.ScopeType
	scopeID    primitive.ObjectID
	hasScopeID bool // false 代表 null，與 NilObjectID 區分
}

func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		employees:   map[primitive.ObjectID]model.Employee{},
		requirement: map[primitive.ObjectID]model.Requirement{},
		assignments: map[primitive.ObjectID]model.RequirementAssignment{},
		submissions: map[primitive.ObjectID]model.ResumeSubmission{},
		mappings:    map[primitive.ObjectID]model.TargetMapping{},
		snapshots:   map[snapshotKey]model.DailyMetricsSnapshot{},
	}
}

// WithClock 測試用，固定 createdAt / updatedAt
func (store *Store) WithClock(now func() time.Time) *Store {
	store.now = now
	return store
}

func NewRepositories() *database.Repositories {
	return NewStore().Repositories()
}

func (store *Store) Repositories() *database.Repositories {
	return &database.Repositories{
		Employees:      &EmployeeRepository{store: store},
		Requirements:   &RequirementRepository{store: store},
		Assignments:    &AssignmentRepository{store: store},
		Submissions:    &SubmissionRepository{store: store},
		TargetMappings: &TargetMappingRepository{store: store},
		Snapshots:      &SnapshotRepository{store: store},
	}
}

func newID(id primitive.ObjectID) primitive.ObjectID {
	if id.IsZero() {
		return primitive.NewObjectID()
	}
	return id
}

func notFound(entity string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", entity, id, database.ErrNotFound)
}

// ─── Employees ─────────────────────────────────────────────────────────────────

type EmployeeRepository struct{ store *Store }

func (repository *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	employee.ID = newID(employee.ID)
	if employee.Status == "" {
		employee.Status = core.EmployeeActive
	}
	employee.CreatedAt, employee.UpdatedAt = s.now(), s.now()
	s.employees[employee.ID] = *employee
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	employee, ok := s.employees[id]
	if !ok {
		return nil, notFound("employee", id)
	}
	return &employee, nil
}

func (repository *EmployeeRepository) ListByReportTo(ctx context.Context, leadID primitive.ObjectID) ([]*model.Employee, error) {
	return repository.filter(func(e model.Employee) bool {
		return e.ReportToEmployeeID != nil && *e.ReportToEmployeeID == leadID
	}), nil
}

func (repository *EmployeeRepository) ListByRoles(ctx context.Context, roles ...core.EmployeeRole) ([]*model.Employee, error) {
	return repository.filter(func(e model.Employee) bool {
		for _, role := range roles {
			if e.Role == role {
				return true
			}
		}
		return false
	}), nil
}

func (repository *EmployeeRepository) filter(match func(model.Employee) bool) []*model.Employee {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*model.Employee
	for _, employee := range s.employees {
		if match(employee) {
			e := employee
			results = append(results, &e)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID.Hex() < results[j].ID.Hex() })
	return results
}

// ─── Requirements ──────────────────────────────────────────────────────────────

type RequirementRepository struct{ store *Store }

func (repository *RequirementRepository) Create(ctx context.Context, requirement *model.Requirement) (*model.Requirement, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	requirement.ID = newID(requirement.ID)
	requirement.CreatedAt, requirement.UpdatedAt = s.now(), s.now()
	s.requirement[requirement.ID] = *requirement
	return requirement, nil
}

func (repository *RequirementRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Requirement, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	requirement, ok := s.requirement[id]
	if !ok {
		return nil, notFound("requirement", id)
	}
	return &requirement, nil
}

// ─── Assignments ───────────────────────────────────────────────────────────────

type AssignmentRepository struct{ store *Store }

func (repository *AssignmentRepository) Create(ctx context.Context, assignment *model.RequirementAssignment) (*model.RequirementAssignment, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment.ID = newID(assignment.ID)
	if assignment.Status == "" {
		assignment.Status = core.AssignmentActive
	}
	if assignment.AssignedDate.IsZero() {
		assignment.AssignedDate = core.DateOf(s.now())
	}
	assignment.CreatedAt, assignment.UpdatedAt = s.now(), s.now()
	s.assignments[assignment.ID] = *assignment
	return assignment, nil
}

func (repository *AssignmentRepository) ListActiveByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]*model.RequirementAssignment, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*model.RequirementAssignment
	for _, assignment := range s.assignments {
		if assignment.RecruiterID == recruiterID && assignment.Status == core.AssignmentActive {
			a := assignment
			results = append(results, &a)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID.Hex() < results[j].ID.Hex() })
	return results, nil
}

// ─── Submissions ───────────────────────────────────────────────────────────────

type SubmissionRepository struct{ store *Store }

func (repository *SubmissionRepository) Create(ctx context.Context, submission *model.ResumeSubmission) (*model.ResumeSubmission, error) {
	if err := submission.DeriveSubmittedOn(); err != nil {
		return nil, err
	}
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	submission.ID = newID(submission.ID)
	submission.CreatedAt = s.now()
	s.submissions[submission.ID] = *submission
	return submission, nil
}

func (repository *SubmissionRepository) CountByRecruiterOnDate(ctx context.Context, recruiterID primitive.ObjectID, date core.CalendarDate) (int, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, submission := range s.submissions {
		if submission.RecruiterID == recruiterID && submission.SubmittedOn == date {
			count++
		}
	}
	return count, nil
}

// ─── Target mappings ───────────────────────────────────────────────────────────

type TargetMappingRepository struct{ store *Store }

func (repository *TargetMappingRepository) Create(ctx context.Context, mapping *model.TargetMapping) (*model.TargetMapping, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	mapping.ID = newID(mapping.ID)
	mapping.CreatedAt, mapping.UpdatedAt = s.now(), s.now()
	s.mappings[mapping.ID] = *mapping
	return mapping, nil
}

func (repository *TargetMappingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.TargetMapping, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	mapping, ok := s.mappings[id]
	if !ok {
		return nil, notFound("target mapping", id)
	}
	return &mapping, nil
}

func (repository *TargetMappingRepository) ListByTeamLead(ctx context.Context, teamLeadID primitive.ObjectID) ([]*model.TargetMapping, error) {
	return repository.filter(func(m model.TargetMapping) bool { return m.TeamLeadID == teamLeadID }), nil
}

func (repository *TargetMappingRepository) ListByTeamMember(ctx context.Context, teamMemberID primitive.ObjectID) ([]*model.TargetMapping, error) {
	return repository.filter(func(m model.TargetMapping) bool { return m.TeamMemberID == teamMemberID }), nil
}

func (repository *TargetMappingRepository) filter(match func(model.TargetMapping) bool) []*model.TargetMapping {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*model.TargetMapping
	for _, mapping := range s.mappings {
		if match(mapping) {
			m := mapping
			results = append(results, &m)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Year != results[j].Year {
			return results[i].Year > results[j].Year
		}
		if results[i].Quarter != results[j].Quarter {
			return results[i].Quarter > results[j].Quarter
		}
		return results[i].ID.Hex() < results[j].ID.Hex()
	})
	return results
}

func (repository *TargetMappingRepository) UpdateAchievement(ctx context.Context, id primitive.ObjectID, achievement database.Achievement) (*model.TargetMapping, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	mapping, ok := s.mappings[id]
	if !ok {
		return nil, notFound("target mapping", id)
	}
	if achievement.TargetAchieved != nil {
		mapping.TargetAchieved = *achievement.TargetAchieved
	}
	if achievement.Incentives != nil {
		mapping.Incentives = *achievement.Incentives
	}
	if achievement.Closures != nil {
		mapping.Closures = *achievement.Closures
	}
	mapping.UpdatedAt = s.now()
	s.mappings[id] = mapping
	return &mapping, nil
}

// ─── Snapshots ─────────────────────────────────────────────────────────────────

type SnapshotRepository struct{ store *Store }

func toSnapshotKey(date core.CalendarDate, scopeType core.ScopeType, scopeID *primitive.ObjectID) snapshotKey {
	key := snapshotKey{date: date, scopeType: scopeType}
	if scopeID != nil {
		key.scopeID = *scopeID
		key.hasScopeID = true
	}
	return key
}

func (repository *SnapshotRepository) Upsert(ctx context.Context, snapshot *model.DailyMetricsSnapshot) (*model.DailyMetricsSnapshot, error) {
	s := repository.store
	s.mu.Lock()
	defer s.mu.Unlock()
	key := toSnapshotKey(snapshot.Date, snapshot.ScopeType, snapshot.ScopeID)
	now := s.now()
	stored, exists := s.snapshots[key]
	if !exists {
		stored = model.DailyMetricsSnapshot{
			ID:        primitive.NewObjectID(),
			Date:      snapshot.Date,
			ScopeType: snapshot.ScopeType,
			CreatedAt: now,
		}
		if snapshot.ScopeID != nil {
			scopeID := *snapshot.ScopeID
			stored.ScopeID = &scopeID
		}
	}
	stored.Delivered = snapshot.Delivered
	stored.Defaulted = snapshot.Defaulted
	stored.RequirementCount = snapshot.RequirementCount
	stored.UpdatedAt = now
	s.snapshots[key] = stored
	return &stored, nil
}

func (repository *SnapshotRepository) Get(ctx context.Context, key database.SnapshotKey) (*model.DailyMetricsSnapshot, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.snapshots[toSnapshotKey(key.Date, key.ScopeType, key.ScopeID)]
	if !ok {
		return nil, notFound("snapshot", key.Date)
	}
	return &stored, nil
}

func (repository *SnapshotRepository) ListByDateRange(ctx context.Context, query database.SnapshotRange) ([]*model.DailyMetricsSnapshot, error) {
	s := repository.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*model.DailyMetricsSnapshot
	for _, snapshot := range s.snapshots {
		if snapshot.ScopeType != query.ScopeType || !database.SameScopeID(snapshot.ScopeID, query.ScopeID) {
			continue
		}
		if snapshot.Date.Before(query.Start) || snapshot.Date.After(query.End) {
			continue
		}
		item := snapshot
		results = append(results, &item)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date.After(results[j].Date) })
	return results, nil
}
