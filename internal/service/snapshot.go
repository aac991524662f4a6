package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	fluentdModel "talentops/internal/database/fluentd/model"
	fluentdRepo "talentops/internal/database/fluentd/repository"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/dto"
	"talentops/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultSnapshotLockTTL = 60 * time.Second

var (
	ErrInvalidScope     = errors.New("invalid snapshot scope")
	ErrInvalidDateRange = errors.New("start date is after end date")
	ErrNegativeMetrics  = errors.New("snapshot metrics must not be negative")
	// ErrScopeLocked 另一個寫入者正在擷取同一 scope
	ErrScopeLocked = database.ErrScopeLocked
)

// SnapshotService 每日彙總快照的寫入、查詢與擷取
type SnapshotService struct {
	trace         *telemetry.Trace
	logger        *zap.Logger
	metric        *telemetry.Metric
	repositories  *database.Repositories
	delivery      *DeliveryService
	locker        database.ScopeLocker
	logRepository *fluentdRepo.LogRepository
	lockTTL       time.Duration
}

func NewSnapshotService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	metric *telemetry.Metric,
	conf *config.Configuration,
	repositories *database.Repositories,
	delivery *DeliveryService,
	locker database.ScopeLocker,
	logRepository *fluentdRepo.LogRepository,
) *SnapshotService {
	lockTTL := defaultSnapshotLockTTL
	if conf.Performance.SnapshotLockTTLSeconds > 0 {
		lockTTL = time.Duration(conf.Performance.SnapshotLockTTLSeconds) * time.Second
	}
	return &SnapshotService{
		trace:         trace,
		logger:        logger,
		metric:        metric,
		repositories:  repositories,
		delivery:      delivery,
		locker:        locker,
		logRepository: logRepository,
		lockTTL:       lockTTL,
	}
}

// ValidateScope organization 不可帶 scopeId，recruiter / team 必須帶
func ValidateScope(scopeType core.ScopeType, scopeID *primitive.ObjectID) error {
	if !scopeType.Valid() {
		return fmt.Errorf("%w: unknown scope type %q", ErrInvalidScope, scopeType)
	}
	if scopeType.RequiresScopeID() && scopeID == nil {
		return fmt.Errorf("%w: %s scope requires scopeId", ErrInvalidScope, scopeType)
	}
	if !scopeType.RequiresScopeID() && scopeID != nil {
		return fmt.Errorf("%w: %s scope must not carry scopeId", ErrInvalidScope, scopeType)
	}
	return nil
}

// Upsert 以 (date, scopeType, scopeId) 為鍵更新或新增；重複呼叫結果相同
func (s *SnapshotService) Upsert(
	ctx context.Context,
	date core.CalendarDate,
	scopeType core.ScopeType,
	scopeID *primitive.ObjectID,
	delivered, defaulted, requirementCount int,
) (_ *dto.SnapshotResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanSnapshotUpsert))
	defer func() { end(returnedError) }()

	if date.IsZero() {
		return nil, core.ErrInvalidCalendarDate
	}
	if err := ValidateScope(scopeType, scopeID); err != nil {
		return nil, err
	}
	if delivered < 0 || defaulted < 0 || requirementCount < 0 {
		return nil, ErrNegativeMetrics
	}

	stored, err := s.repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{
		Date:             date,
		ScopeType:        scopeType,
		ScopeID:          scopeID,
		Delivered:        delivered,
		Defaulted:        defaulted,
		RequirementCount: requirementCount,
	})
	if err != nil {
		return nil, err
	}

	s.trace.ApplyTraceAttributes(span, core.TraceSnapshotMeta{
		Op:        "upsert",
		Date:      date.String(),
		ScopeType: string(scopeType),
		ScopeID:   hexOrEmpty(scopeID),
	})
	if s.metric.SnapshotWritesTotal != nil {
		s.metric.SnapshotWritesTotal.WithLabelValues(string(scopeType)).Inc()
	}
	if err := s.logRepository.LogSnapshot(ctx, fluentdModel.SnapshotLog{
		Date:             date.String(),
		ScopeType:        string(scopeType),
		ScopeID:          hexOrEmpty(scopeID),
		Delivered:        delivered,
		Defaulted:        defaulted,
		RequirementCount: requirementCount,
	}); err != nil {
		s.logger.Warn("failed to ship snapshot log", zap.Error(err))
	}
	return snapshotToDto(stored), nil
}

func (s *SnapshotService) Get(ctx context.Context, date core.CalendarDate, scopeType core.ScopeType, scopeID *primitive.ObjectID) (_ *dto.SnapshotResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := ValidateScope(scopeType, scopeID); err != nil {
		return nil, err
	}
	stored, err := s.repositories.Snapshots.Get(ctx, database.SnapshotKey{Date: date, ScopeType: scopeType, ScopeID: scopeID})
	if err != nil {
		return nil, err
	}
	return snapshotToDto(stored), nil
}

// ListByDateRange 含頭尾，日期新到舊；start 晚於 end 時回傳 ErrInvalidDateRange
func (s *SnapshotService) ListByDateRange(
	ctx context.Context,
	start, end core.CalendarDate,
	scopeType core.ScopeType,
	scopeID *primitive.ObjectID,
) (_ []*dto.SnapshotResponseDto, returnedError error) {
	ctx, span, endSpan := s.trace.WithSpan(ctx, string(core.SpanSnapshotList))
	defer func() { endSpan(returnedError) }()

	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	if err := ValidateScope(scopeType, scopeID); err != nil {
		return nil, err
	}

	snapshots, err := s.repositories.Snapshots.ListByDateRange(ctx, database.SnapshotRange{
		Start:     start,
		End:       end,
		ScopeType: scopeType,
		ScopeID:   scopeID,
	})
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceSnapshotMeta{
		Op:        "list",
		StartDate: start.String(),
		EndDate:   end.String(),
		ScopeType: string(scopeType),
		ScopeID:   hexOrEmpty(scopeID),
		Count:     len(snapshots),
	})

	results := make([]*dto.SnapshotResponseDto, len(snapshots))
	for i, snapshot := range snapshots {
		results[i] = snapshotToDto(snapshot)
	}
	return results, nil
}

func (s *SnapshotService) CaptureRecruiter(ctx context.Context, date core.CalendarDate, recruiterID primitive.ObjectID) (*dto.DailyMetrics, error) {
	return s.capture(ctx, date, core.ScopeRecruiter, &recruiterID, func(ctx context.Context) (*dto.DailyMetrics, error) {
		return s.delivery.RecruiterDaily(ctx, recruiterID, date)
	})
}

func (s *SnapshotService) CaptureTeam(ctx context.Context, date core.CalendarDate, teamLeadID primitive.ObjectID) (*dto.DailyMetrics, error) {
	return s.capture(ctx, date, core.ScopeTeam, &teamLeadID, func(ctx context.Context) (*dto.DailyMetrics, error) {
		return s.delivery.TeamDaily(ctx, teamLeadID, date)
	})
}

func (s *SnapshotService) CaptureOrganization(ctx context.Context, date core.CalendarDate) (*dto.DailyMetrics, error) {
	return s.capture(ctx, date, core.ScopeOrganization, nil, func(ctx context.Context) (*dto.DailyMetrics, error) {
		return s.delivery.OrganizationDaily(ctx, date)
	})
}

// capture 持有 scope 鎖期間完成計算與寫入
func (s *SnapshotService) capture(
	ctx context.Context,
	date core.CalendarDate,
	scopeType core.ScopeType,
	scopeID *primitive.ObjectID,
	compute func(context.Context) (*dto.DailyMetrics, error),
) (_ *dto.DailyMetrics, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanSnapshotCapture))
	defer func() { end(returnedError) }()
	s.trace.ApplyTraceAttributes(span, core.TraceSnapshotMeta{
		Op:        "capture",
		Date:      date.String(),
		ScopeType: string(scopeType),
		ScopeID:   hexOrEmpty(scopeID),
	})

	release, err := s.locker.TryLock(ctx, lockKey(date, scopeType, scopeID), s.lockTTL)
	if err != nil {
		if errors.Is(err, ErrScopeLocked) && s.metric.SnapshotLockedTotal != nil {
			s.metric.SnapshotLockedTotal.WithLabelValues(string(scopeType)).Inc()
		}
		return nil, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release snapshot lock", zap.String("scopeType", string(scopeType)), zap.Error(err))
		}
	}()

	metrics, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.Upsert(ctx, date, scopeType, scopeID, metrics.Delivered, metrics.Defaulted, metrics.RequirementCount); err != nil {
		return nil, err
	}
	return metrics, nil
}

// CaptureAll 依序擷取 organization、每位 team_leader 的團隊、每位 recruiter。
// 被鎖住的 scope 記為 skipped；其他錯誤記為 failed 並在最後合併回傳。
func (s *SnapshotService) CaptureAll(ctx context.Context, date core.CalendarDate) (*dto.CaptureResultDto, error) {
	started := time.Now()
	result := &dto.CaptureResultDto{Date: date.String(), Scopes: []dto.CapturedScopeDto{}}
	var failures []error

	record := func(scopeType core.ScopeType, scopeID *primitive.ObjectID, metrics *dto.DailyMetrics, err error) {
		entry := dto.CapturedScopeDto{ScopeType: scopeType}
		if scopeID != nil {
			hex := scopeID.Hex()
			entry.ScopeID = &hex
		}
		switch {
		case err == nil:
			entry.Status = "written"
			entry.DailyMetrics = *metrics
			result.Written++
		case errors.Is(err, ErrScopeLocked):
			entry.Status = "locked"
			result.Skipped++
			s.logger.Info("snapshot scope locked, skipped",
				zap.String("date", date.String()),
				zap.String("scopeType", string(scopeType)),
				zap.String("scopeId", hexOrEmpty(scopeID)),
			)
		default:
			entry.Status = "failed"
			result.Failed++
			failures = append(failures, fmt.Errorf("%s %s: %w", scopeType, hexOrEmpty(scopeID), err))
			s.logger.Error("snapshot capture failed",
				zap.String("date", date.String()),
				zap.String("scopeType", string(scopeType)),
				zap.String("scopeId", hexOrEmpty(scopeID)),
				zap.Error(err),
			)
		}
		result.Scopes = append(result.Scopes, entry)
	}

	metrics, err := s.CaptureOrganization(ctx, date)
	record(core.ScopeOrganization, nil, metrics, err)

	leads, err := s.repositories.Employees.ListByRoles(ctx, core.RoleTeamLeader)
	if err != nil {
		return nil, err
	}
	for _, lead := range leads {
		metrics, err := s.CaptureTeam(ctx, date, lead.ID)
		record(core.ScopeTeam, &lead.ID, metrics, err)
	}

	recruiters, err := s.repositories.Employees.ListByRoles(ctx, core.RoleRecruiter)
	if err != nil {
		return nil, err
	}
	for _, recruiter := range recruiters {
		metrics, err := s.CaptureRecruiter(ctx, date, recruiter.ID)
		record(core.ScopeRecruiter, &recruiter.ID, metrics, err)
	}

	outcome := "success"
	if len(failures) > 0 {
		outcome = "failure"
	}
	if s.metric.SnapshotJobDuration != nil {
		s.metric.SnapshotJobDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	}
	return result, errors.Join(failures...)
}

// lockKey 例如 2025-07-01:team:64b...
func lockKey(date core.CalendarDate, scopeType core.ScopeType, scopeID *primitive.ObjectID) string {
	if scopeID == nil {
		return fmt.Sprintf("%s:%s", date, scopeType)
	}
	return fmt.Sprintf("%s:%s:%s", date, scopeType, scopeID.Hex())
}

func hexOrEmpty(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}

func snapshotToDto(snapshot *model.DailyMetricsSnapshot) *dto.SnapshotResponseDto {
	response := &dto.SnapshotResponseDto{
		ID:               snapshot.ID.Hex(),
		Date:             snapshot.Date.String(),
		ScopeType:        snapshot.ScopeType,
		Delivered:        snapshot.Delivered,
		Defaulted:        snapshot.Defaulted,
		RequirementCount: snapshot.RequirementCount,
		CreatedAt:        snapshot.CreatedAt,
		UpdatedAt:        snapshot.UpdatedAt,
	}
	if snapshot.ScopeID != nil {
		hex := snapshot.ScopeID.Hex()
		response.ScopeID = &hex
	}
	return response
}
