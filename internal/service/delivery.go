package service

import (
	"context"
	"errors"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/dto"
	"talentops/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultAggregateConcurrency = 8

// DeliveryService 計算招募人員、團隊、全公司的單日交付；唯讀
type DeliveryService struct {
	trace        *telemetry.Trace
	logger       *zap.Logger
	repositories *database.Repositories
	policy       *TargetPolicy
	concurrency  int
}

func NewDeliveryService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	conf *config.Configuration,
	repositories *database.Repositories,
	policy *TargetPolicy,
) *DeliveryService {
	concurrency := conf.Performance.AggregateConcurrency
	if concurrency <= 0 {
		concurrency = defaultAggregateConcurrency
	}
	return &DeliveryService{
		trace:        trace,
		logger:       logger,
		repositories: repositories,
		policy:       policy,
		concurrency:  concurrency,
	}
}

// RecruiterDaily 招募人員當日的目標與交付。
// 已封存或已不存在的職缺不計入 required 與 requirementCount。
func (s *DeliveryService) RecruiterDaily(ctx context.Context, recruiterID primitive.ObjectID, date core.CalendarDate) (_ *dto.DailyMetrics, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanRecruiterDaily))
	defer func() { end(returnedError) }()

	assignments, err := s.repositories.Assignments.ListActiveByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	required, requirementCount := 0, 0
	for _, assignment := range assignments {
		requirement, err := s.repositories.Requirements.GetByID(ctx, assignment.RequirementID)
		if errors.Is(err, database.ErrNotFound) {
			s.logger.Debug("assignment points to missing requirement",
				zap.String("assignmentId", assignment.ID.Hex()),
				zap.String("requirementId", assignment.RequirementID.Hex()),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		if requirement.Archived {
			continue
		}
		target, err := s.policy.Required(ctx, requirement)
		if err != nil {
			return nil, err
		}
		required += target
		requirementCount++
	}

	delivered, err := s.repositories.Submissions.CountByRecruiterOnDate(ctx, recruiterID, date)
	if err != nil {
		return nil, err
	}

	metrics := dto.NewDailyMetrics(delivered, required, requirementCount)
	s.trace.ApplyTraceAttributes(span, deliveryMeta(core.ScopeRecruiter, &recruiterID, date, 1, metrics))
	return metrics, nil
}

// TeamDaily 主管本人加上直屬成員；主管不存在時回傳全 0
func (s *DeliveryService) TeamDaily(ctx context.Context, teamLeadID primitive.ObjectID, date core.CalendarDate) (_ *dto.DailyMetrics, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanTeamDaily))
	defer func() { end(returnedError) }()

	if _, err := s.repositories.Employees.GetByID(ctx, teamLeadID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return dto.NewDailyMetrics(0, 0, 0), nil
		}
		return nil, err
	}
	members, err := s.repositories.Employees.ListByReportTo(ctx, teamLeadID)
	if err != nil {
		return nil, err
	}

	memberIDs := []primitive.ObjectID{teamLeadID}
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}
	memberIDs = uniqueIDs(memberIDs)

	metrics, err := s.aggregate(ctx, memberIDs, date)
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, deliveryMeta(core.ScopeTeam, &teamLeadID, date, len(memberIDs), metrics))
	return metrics, nil
}

// OrganizationDaily 所有 recruiter 與 team_leader
func (s *DeliveryService) OrganizationDaily(ctx context.Context, date core.CalendarDate) (_ *dto.DailyMetrics, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanOrganizationDaily))
	defer func() { end(returnedError) }()

	employees, err := s.repositories.Employees.ListByRoles(ctx, core.DeliveryRoles...)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]primitive.ObjectID, 0, len(employees))
	for _, employee := range employees {
		memberIDs = append(memberIDs, employee.ID)
	}
	memberIDs = uniqueIDs(memberIDs)

	metrics, err := s.aggregate(ctx, memberIDs, date)
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, deliveryMeta(core.ScopeOrganization, nil, date, len(memberIDs), metrics))
	return metrics, nil
}

// aggregate 先加總 delivered / required / requirementCount，defaulted 只在彙總層 clamp 一次
func (s *DeliveryService) aggregate(ctx context.Context, memberIDs []primitive.ObjectID, date core.CalendarDate) (*dto.DailyMetrics, error) {
	results := make([]*dto.DailyMetrics, len(memberIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, memberID := range memberIDs {
		group.Go(func() error {
			metrics, err := s.RecruiterDaily(groupCtx, memberID, date)
			if err != nil {
				return err
			}
			results[i] = metrics
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	delivered, required, requirementCount := 0, 0, 0
	for _, metrics := range results {
		delivered += metrics.Delivered
		required += metrics.Required
		requirementCount += metrics.RequirementCount
	}
	return dto.NewDailyMetrics(delivered, required, requirementCount), nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	unique := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func deliveryMeta(scope core.ScopeType, scopeID *primitive.ObjectID, date core.CalendarDate, members int, metrics *dto.DailyMetrics) core.TraceDeliveryMeta {
	meta := core.TraceDeliveryMeta{
		Scope:            string(scope),
		Date:             date.String(),
		Members:          members,
		Required:         metrics.Required,
		Delivered:        metrics.Delivered,
		Defaulted:        metrics.Defaulted,
		RequirementCount: metrics.RequirementCount,
	}
	if scopeID != nil {
		meta.ScopeID = scopeID.Hex()
	}
	return meta
}
