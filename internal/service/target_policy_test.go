package service

import (
	"testing"

	"talentops/internal/core"
	"talentops/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRequiredResumes(t *testing.T) {
	testCases := []struct {
		criticality core.Criticality
		toughness   core.Toughness
		want        int
	}{
		{core.CriticalityHigh, core.ToughnessEasy, 3},
		{core.CriticalityHigh, core.ToughnessMedium, 2},
		{core.CriticalityHigh, core.ToughnessTough, 1},
		{core.CriticalityMedium, core.ToughnessEasy, 4},
		{core.CriticalityMedium, core.ToughnessMedium, 3},
		{core.CriticalityMedium, core.ToughnessTough, 2},
		{core.CriticalityLow, core.ToughnessEasy, 5},
		{core.CriticalityLow, core.ToughnessMedium, 4},
		{core.CriticalityLow, core.ToughnessTough, 3},
	}
	for _, tc := range testCases {
		t.Run(string(tc.criticality)+"/"+string(tc.toughness), func(t *testing.T) {
			got, err := RequiredResumes(tc.criticality, tc.toughness)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequiredResumes_Normalize(t *testing.T) {
	got, err := RequiredResumes(" high ", "tough")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRequiredResumes_Unknown(t *testing.T) {
	testCases := []struct {
		name        string
		criticality core.Criticality
		toughness   core.Toughness
	}{
		{"未知 criticality", "URGENT", core.ToughnessEasy},
		{"未知 toughness", core.CriticalityLow, "Impossible"},
		{"皆為空", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RequiredResumes(tc.criticality, tc.toughness)
			assert.ErrorIs(t, err, ErrUnknownTargetPolicy)
			assert.Equal(t, DefaultRequiredResumes, got)
		})
	}
}

func TestTargetPolicy_Required(t *testing.T) {
	unknown := &model.Requirement{ID: primitive.NewObjectID(), Criticality: "URGENT", Toughness: core.ToughnessEasy}
	known := &model.Requirement{ID: primitive.NewObjectID(), Criticality: core.CriticalityMedium, Toughness: core.ToughnessTough}

	testCases := []struct {
		name     string
		strict   bool
		fallback int
		input    *model.Requirement
		want     int
		wantErr  error
	}{
		{name: "已知組合", input: known, want: 2},
		{name: "寬鬆模式使用預設值", input: unknown, want: DefaultRequiredResumes},
		{name: "寬鬆模式使用設定的預設值", fallback: 7, input: unknown, want: 7},
		{name: "嚴格模式回傳錯誤", strict: true, input: unknown, wantErr: ErrUnknownTargetPolicy},
		{name: "嚴格模式已知組合正常", strict: true, input: known, want: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.conf.Performance.StrictTargetPolicy = tc.strict
			f.conf.Performance.DefaultRequiredResumes = tc.fallback
			f.rebuild()

			got, err := f.policy.Required(f.ctx, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTargetPolicy_Table(t *testing.T) {
	f := newFixture(t)
	table := f.policy.Table()

	require.Len(t, table.Rows, len(core.Criticalities)*len(core.Toughnesses))
	assert.Equal(t, DefaultRequiredResumes, table.Default)
	assert.False(t, table.Strict)
	assert.Equal(t, core.CriticalityHigh, table.Rows[0].Criticality)
	assert.Equal(t, core.ToughnessEasy, table.Rows[0].Toughness)
	assert.Equal(t, 3, table.Rows[0].Required)
	last := table.Rows[len(table.Rows)-1]
	assert.Equal(t, core.CriticalityLow, last.Criticality)
	assert.Equal(t, core.ToughnessTough, last.Toughness)
	assert.Equal(t, 3, last.Required)
	for _, row := range table.Rows {
		assert.Positive(t, row.Required)
	}
}
