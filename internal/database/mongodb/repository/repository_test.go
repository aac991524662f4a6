package repository

import (
	"context"
	"errors"
	"testing"

	"talentops/internal/core"
	"talentops/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockIndexView struct {
	mock.Mock
}

func (m *mockIndexView) CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error) {
	args := m.Called(ctx, models)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func TestCreateIndexes(t *testing.T) {
	errBuild := errors.New("index build failed: E11000 duplicate key")

	testCases := []struct {
		name    string
		names   []string
		err     error
		wantErr bool
	}{
		{name: "建立成功", names: []string{"uniq_date_scopeType_scopeId", "idx_scopeType_scopeId_date"}},
		{name: "建立失敗回傳錯誤", err: errBuild, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view := &mockIndexView{}
			view.On("CreateMany", mock.Anything, model.DailyMetricsSnapshotIndexes).Return(tc.names, tc.err)

			err := createIndexes(context.Background(), view, core.MongoCollectionDailyMetricsSnapshots, model.DailyMetricsSnapshotIndexes)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errBuild)
				assert.Contains(t, err.Error(), string(core.MongoCollectionDailyMetricsSnapshots))
			} else {
				assert.NoError(t, err)
			}
			view.AssertExpectations(t)
		})
	}
}

func TestDailyMetricsSnapshotIndexes_UniqueKey(t *testing.T) {
	require.NotEmpty(t, model.DailyMetricsSnapshotIndexes)
	unique := model.DailyMetricsSnapshotIndexes[0]
	require.NotNil(t, unique.Options)
	require.NotNil(t, unique.Options.Unique)
	assert.True(t, *unique.Options.Unique)
	assert.Equal(t, "uniq_date_scopeType_scopeId", *unique.Options.Name)
}
