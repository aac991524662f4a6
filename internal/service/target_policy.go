package service

import (
	"context"
	"errors"
	"fmt"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/dto"
	"talentops/internal/telemetry"

	"go.uber.org/zap"
)

// DefaultRequiredResumes 政策表查不到組合時的每日目標
const DefaultRequiredResumes = 3

var ErrUnknownTargetPolicy = errors.New("unknown target policy")

// 越緊急、越容易的職缺，每日需交付的履歷越多
var requiredResumesTable = map[core.Criticality]map[core.Toughness]int{
	core.CriticalityHigh: {
		core.ToughnessEasy:   3,
		core.ToughnessMedium: 2,
		core.ToughnessTough:  1,
	},
	core.CriticalityMedium: {
		core.ToughnessEasy:   4,
		core.ToughnessMedium: 3,
		core.ToughnessTough:  2,
	},
	core.CriticalityLow: {
		core.ToughnessEasy:   5,
		core.ToughnessMedium: 4,
		core.ToughnessTough:  3,
	},
}

// RequiredResumes 查政策表；未知組合回傳 DefaultRequiredResumes 並附上 ErrUnknownTargetPolicy
func RequiredResumes(criticality core.Criticality, toughness core.Toughness) (int, error) {
	if row, ok := requiredResumesTable[criticality.Normalize()]; ok {
		if required, ok := row[toughness.Normalize()]; ok {
			return required, nil
		}
	}
	return DefaultRequiredResumes, fmt.Errorf("%w: criticality=%q toughness=%q",
		ErrUnknownTargetPolicy, string(criticality), string(toughness))
}

// TargetPolicy 決定未知組合要中斷（strict）或以預設值繼續並留下紀錄（lenient）
type TargetPolicy struct {
	strict   bool
	fallback int
	logger   *zap.Logger
	metric   *telemetry.Metric
}

func NewTargetPolicy(conf *config.Configuration, logger *zap.Logger, metric *telemetry.Metric) *TargetPolicy {
	fallback := DefaultRequiredResumes
	if conf.Performance.DefaultRequiredResumes > 0 {
		fallback = conf.Performance.DefaultRequiredResumes
	}
	return &TargetPolicy{
		strict:   conf.Performance.StrictTargetPolicy,
		fallback: fallback,
		logger:   logger,
		metric:   metric,
	}
}

func (policy *TargetPolicy) Strict() bool {
	return policy.strict
}

// Required 單一職缺的每日目標
func (policy *TargetPolicy) Required(ctx context.Context, requirement *model.Requirement) (int, error) {
	required, err := RequiredResumes(requirement.Criticality, requirement.Toughness)
	if err == nil {
		return required, nil
	}
	if policy.strict {
		return 0, fmt.Errorf("requirement %s: %w", requirement.ID.Hex(), err)
	}
	policy.logger.Warn("unknown target policy, using default",
		zap.String("requirementId", requirement.ID.Hex()),
		zap.String("criticality", string(requirement.Criticality)),
		zap.String("toughness", string(requirement.Toughness)),
		zap.Int("default", policy.fallback),
	)
	if policy.metric.UnknownTargetPolicyTotal != nil {
		policy.metric.UnknownTargetPolicyTotal.Inc()
	}
	return policy.fallback, nil
}

// Table 依 criticality 由高到低、toughness 由易到難列出
func (policy *TargetPolicy) Table() *dto.TargetPolicyDto {
	rows := make([]dto.TargetPolicyRowDto, 0, len(core.Criticalities)*len(core.Toughnesses))
	for _, criticality := range core.Criticalities {
		for _, toughness := range core.Toughnesses {
			rows = append(rows, dto.TargetPolicyRowDto{
				Criticality: criticality,
				Toughness:   toughness,
				Required:    requiredResumesTable[criticality][toughness],
			})
		}
	}
	return &dto.TargetPolicyDto{Rows: rows, Default: policy.fallback, Strict: policy.strict}
}
