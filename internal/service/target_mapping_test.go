package service

import (
	"testing"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTargetMappingService_Create(t *testing.T) {
	f := newFixture(t)
	lead := f.employee(core.RoleTeamLeader, nil)
	member := f.employee(core.RoleRecruiter, &lead)
	service := NewTargetMappingService(f.trace, f.repositories)

	valid := func() *dto.CreateTargetMappingDto {
		return &dto.CreateTargetMappingDto{
			TeamLeadID:    lead.Hex(),
			TeamMemberID:  member.Hex(),
			Quarter:       "q2",
			Year:          2025,
			MinimumTarget: 120,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(input *dto.CreateTargetMappingDto)
		wantErr error
	}{
		{name: "建立成功", mutate: func(*dto.CreateTargetMappingDto) {}},
		{name: "主管與成員相同", mutate: func(input *dto.CreateTargetMappingDto) { input.TeamMemberID = lead.Hex() }, wantErr: ErrSelfTargetMapping},
		{name: "id 格式錯誤", mutate: func(input *dto.CreateTargetMappingDto) { input.TeamLeadID = "not-an-id" }, wantErr: ErrInvalidTargetMapping},
		{name: "季度錯誤", mutate: func(input *dto.CreateTargetMappingDto) { input.Quarter = "Q5" }, wantErr: core.ErrInvalidQuarter},
		{name: "年份錯誤", mutate: func(input *dto.CreateTargetMappingDto) { input.Year = 1999 }, wantErr: ErrInvalidTargetMapping},
		{name: "金額為負", mutate: func(input *dto.CreateTargetMappingDto) { input.Incentives = -1 }, wantErr: ErrInvalidTargetMapping},
		{name: "成員不存在", mutate: func(input *dto.CreateTargetMappingDto) { input.TeamMemberID = primitive.NewObjectID().Hex() }, wantErr: database.ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid()
			tc.mutate(input)
			created, err := service.Create(f.ctx, input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, core.QuarterQ2, created.Quarter)
			assert.Equal(t, lead.Hex(), created.TeamLeadID)
			assert.Equal(t, 120.0, created.MinimumTarget)

			fetched, err := service.GetByID(f.ctx, mustHex(t, created.ID))
			require.NoError(t, err)
			assert.Equal(t, created.ID, fetched.ID)
		})
	}
}

func TestTargetMappingService_RecordAchievement(t *testing.T) {
	f := newFixture(t)
	lead := f.employee(core.RoleTeamLeader, nil)
	member := f.employee(core.RoleRecruiter, &lead)
	service := NewTargetMappingService(f.trace, f.repositories)

	created, err := service.Create(f.ctx, &dto.CreateTargetMappingDto{
		TeamLeadID:     lead.Hex(),
		TeamMemberID:   member.Hex(),
		Quarter:        "Q3",
		Year:           2025,
		MinimumTarget:  100,
		TargetAchieved: 10,
		Incentives:     5,
		Closures:       1,
	})
	require.NoError(t, err)
	id := mustHex(t, created.ID)

	updated, err := service.RecordAchievement(f.ctx, id, &dto.RecordAchievementDto{TargetAchieved: ptr(90.0)})
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.TargetAchieved)
	assert.Equal(t, 5.0, updated.Incentives)
	assert.Equal(t, 1, updated.Closures)

	updated, err = service.RecordAchievement(f.ctx, id, &dto.RecordAchievementDto{Incentives: ptr(12.5), Closures: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.TargetAchieved)
	assert.Equal(t, 12.5, updated.Incentives)
	assert.Equal(t, 3, updated.Closures)

	_, err = service.RecordAchievement(f.ctx, id, &dto.RecordAchievementDto{})
	assert.ErrorIs(t, err, ErrInvalidTargetMapping)

	_, err = service.RecordAchievement(f.ctx, id, &dto.RecordAchievementDto{Closures: ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidTargetMapping)

	_, err = service.RecordAchievement(f.ctx, primitive.NewObjectID(), &dto.RecordAchievementDto{Closures: ptr(1)})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func mustHex(t *testing.T, hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
