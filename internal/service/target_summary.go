package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/dto"
	"talentops/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidPerspective = errors.New("perspective must be lead or member")

// TargetSummaryService 依季度彙總目標與實績
type TargetSummaryService struct {
	trace        *telemetry.Trace
	repositories *database.Repositories
	quarterOf    core.QuarterStrategy
	now          func() time.Time
}

func NewTargetSummaryService(trace *telemetry.Trace, conf *config.Configuration, repositories *database.Repositories) *TargetSummaryService {
	return &TargetSummaryService{
		trace:        trace,
		repositories: repositories,
		quarterOf:    core.FiscalQuarters(time.Month(conf.Performance.FiscalYearStartMonth)),
		now:          time.Now,
	}
}

func (s *TargetSummaryService) WithClock(now func() time.Time) *TargetSummaryService {
	s.now = now
	return s
}

func (s *TargetSummaryService) WithQuarterStrategy(quarterOf core.QuarterStrategy) *TargetSummaryService {
	s.quarterOf = quarterOf
	return s
}

// GetTargetSummary lead 看自己設定的目標，member 看被指派的目標
func (s *TargetSummaryService) GetTargetSummary(ctx context.Context, personID primitive.ObjectID, perspective core.TargetPerspective) (_ *dto.TargetSummaryDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanTargetSummary))
	defer func() { end(returnedError) }()

	var (
		mappings []*model.TargetMapping
		err      error
	)
	switch perspective {
	case core.PerspectiveLead:
		mappings, err = s.repositories.TargetMappings.ListByTeamLead(ctx, personID)
	case core.PerspectiveMember:
		mappings, err = s.repositories.TargetMappings.ListByTeamMember(ctx, personID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPerspective, perspective)
	}
	if err != nil {
		return nil, err
	}

	summary := SummarizeTargets(mappings, s.now(), s.quarterOf)
	summary.PersonID = personID.Hex()
	summary.Perspective = string(perspective)

	s.trace.ApplyTraceAttributes(span, core.TraceTargetSummaryMeta{
		PersonID:       summary.PersonID,
		Perspective:    summary.Perspective,
		CurrentQuarter: summary.CurrentQuarter.Key,
		Mappings:       len(mappings),
		Quarters:       len(summary.AllQuarters),
	})
	return summary, nil
}

// SummarizeTargets 以 "{quarter}-{year}" 分組加總。
// CurrentQuarter 一定存在（無資料時為 Pending 的 0 值）；AllQuarters 只含有資料的分組，年度與季度由新到舊。
func SummarizeTargets(mappings []*model.TargetMapping, now time.Time, quarterOf core.QuarterStrategy) *dto.TargetSummaryDto {
	if quarterOf == nil {
		quarterOf = core.CalendarQuarters
	}
	currentQuarter, currentYear := quarterOf(now)
	currentKey := core.QuarterKey(currentQuarter, currentYear)

	groups := map[string]*dto.QuarterSummaryDto{}
	for _, mapping := range mappings {
		quarter := normalizeQuarter(mapping.Quarter)
		key := core.QuarterKey(quarter, mapping.Year)
		group, ok := groups[key]
		if !ok {
			group = &dto.QuarterSummaryDto{Key: key, Quarter: quarter, Year: mapping.Year}
			groups[key] = group
		}
		group.MinimumTarget += mapping.MinimumTarget
		group.TargetAchieved += mapping.TargetAchieved
		group.Incentives += mapping.Incentives
		group.Closures += mapping.Closures
	}

	all := make([]dto.QuarterSummaryDto, 0, len(groups))
	for key, group := range groups {
		group.IsCurrent = key == currentKey
		group.Status = DeriveQuarterStatus(group.MinimumTarget, group.TargetAchieved, group.IsCurrent)
		all = append(all, *group)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Year != all[j].Year {
			return all[i].Year > all[j].Year
		}
		if all[i].Quarter.Index() != all[j].Quarter.Index() {
			return all[i].Quarter.Index() > all[j].Quarter.Index()
		}
		return all[i].Key > all[j].Key
	})

	current := dto.QuarterSummaryDto{
		Key:       currentKey,
		Quarter:   currentQuarter,
		Year:      currentYear,
		Status:    DeriveQuarterStatus(0, 0, true),
		IsCurrent: true,
	}
	if group, ok := groups[currentKey]; ok {
		current = *group
	}
	return &dto.TargetSummaryDto{CurrentQuarter: current, AllQuarters: all}
}

// DeriveQuarterStatus 判斷順序固定：達標 → 部分達成 → 當季有目標 → Pending
func DeriveQuarterStatus(minimumTarget, targetAchieved float64, isCurrent bool) core.QuarterStatus {
	switch {
	case minimumTarget > 0 && targetAchieved >= minimumTarget:
		return core.QuarterCompleted
	case targetAchieved > 0 && targetAchieved < minimumTarget:
		return core.QuarterInProgress
	case isCurrent && minimumTarget > 0:
		return core.QuarterInProgress
	default:
		return core.QuarterPending
	}
}

// normalizeQuarter 舊資料可能是小寫或帶空白；無法辨識時保留原值自成一組
func normalizeQuarter(quarter core.Quarter) core.Quarter {
	if parsed, err := core.ParseQuarter(string(quarter)); err == nil {
		return parsed
	}
	return core.Quarter(strings.TrimSpace(string(quarter)))
}
