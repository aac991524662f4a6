package service

import (
	"context"
	"errors"
	"fmt"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/dto"
	"talentops/internal/telemetry"
	"talentops/utils/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSelfTargetMapping    = errors.New("team lead and team member must differ")
	ErrInvalidTargetMapping = errors.New("invalid target mapping")
)

// TargetMappingService 季度目標只新增與更新實績，不刪除
type TargetMappingService struct {
	trace        *telemetry.Trace
	repositories *database.Repositories
}

func NewTargetMappingService(trace *telemetry.Trace, repositories *database.Repositories) *TargetMappingService {
	return &TargetMappingService{trace: trace, repositories: repositories}
}

func (s *TargetMappingService) Create(ctx context.Context, input *dto.CreateTargetMappingDto) (_ *dto.TargetMappingResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanTargetMapping))
	defer func() { end(returnedError) }()

	teamLeadID, err := primitive.ObjectIDFromHex(input.TeamLeadID)
	if err != nil {
		return nil, fmt.Errorf("%w: teamLeadId %q", ErrInvalidTargetMapping, input.TeamLeadID)
	}
	teamMemberID, err := primitive.ObjectIDFromHex(input.TeamMemberID)
	if err != nil {
		return nil, fmt.Errorf("%w: teamMemberId %q", ErrInvalidTargetMapping, input.TeamMemberID)
	}
	if teamLeadID == teamMemberID {
		return nil, ErrSelfTargetMapping
	}
	quarter, err := core.ParseQuarter(input.Quarter)
	if err != nil {
		return nil, err
	}
	if !validate.ValidYear(input.Year) {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidTargetMapping, input.Year)
	}
	if input.MinimumTarget < 0 || input.TargetAchieved < 0 || input.Incentives < 0 || input.Closures < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", ErrInvalidTargetMapping)
	}
	for _, id := range []primitive.ObjectID{teamLeadID, teamMemberID} {
		if _, err := s.repositories.Employees.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	created, err := s.repositories.TargetMappings.Create(ctx, &model.TargetMapping{
		TeamLeadID:     teamLeadID,
		TeamMemberID:   teamMemberID,
		Quarter:        quarter,
		Year:           input.Year,
		MinimumTarget:  input.MinimumTarget,
		TargetAchieved: input.TargetAchieved,
		Incentives:     input.Incentives,
		Closures:       input.Closures,
	})
	if err != nil {
		return nil, err
	}
	return mappingToDto(created), nil
}

func (s *TargetMappingService) GetByID(ctx context.Context, id primitive.ObjectID) (_ *dto.TargetMappingResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	mapping, err := s.repositories.TargetMappings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mappingToDto(mapping), nil
}

// RecordAchievement 只覆寫有帶值的欄位
func (s *TargetMappingService) RecordAchievement(ctx context.Context, id primitive.ObjectID, input *dto.RecordAchievementDto) (_ *dto.TargetMappingResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanTargetMapping))
	defer func() { end(returnedError) }()

	if input.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidTargetMapping)
	}
	if (input.TargetAchieved != nil && *input.TargetAchieved < 0) ||
		(input.Incentives != nil && *input.Incentives < 0) ||
		(input.Closures != nil && *input.Closures < 0) {
		return nil, fmt.Errorf("%w: amounts must not be negative", ErrInvalidTargetMapping)
	}

	updated, err := s.repositories.TargetMappings.UpdateAchievement(ctx, id, database.Achievement{
		TargetAchieved: input.TargetAchieved,
		Incentives:     input.Incentives,
		Closures:       input.Closures,
	})
	if err != nil {
		return nil, err
	}
	return mappingToDto(updated), nil
}

func mappingToDto(mapping *model.TargetMapping) *dto.TargetMappingResponseDto {
	return &dto.TargetMappingResponseDto{
		ID:             mapping.ID.Hex(),
		TeamLeadID:     mapping.TeamLeadID.Hex(),
		TeamMemberID:   mapping.TeamMemberID.Hex(),
		Quarter:        mapping.Quarter,
		Year:           mapping.Year,
		MinimumTarget:  mapping.MinimumTarget,
		TargetAchieved: mapping.TargetAchieved,
		Incentives:     mapping.Incentives,
		Closures:       mapping.Closures,
		CreatedAt:      mapping.CreatedAt,
		UpdatedAt:      mapping.UpdatedAt,
	}
}
