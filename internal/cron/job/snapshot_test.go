package job

import (
	"context"
	"testing"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/client"
	"talentops/internal/database/fluentd/repository"
	"talentops/internal/database/memory"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/service"
	"talentops/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSnapshotJob_CapturesYesterday(t *testing.T) {
	conf := &config.Configuration{}
	trace := &telemetry.Trace{}
	metric := telemetry.NewMetricWithRegisterer(conf, nil)
	repositories := memory.NewRepositories()
	_, err := repositories.Employees.Create(context.Background(), &model.Employee{DisplayName: "lead", Role: core.RoleTeamLeader})
	require.NoError(t, err)

	nop := zap.NewNop()
	policy := service.NewTargetPolicy(conf, nop, metric)
	delivery := service.NewDeliveryService(trace, nop, conf, repositories, policy)
	snapshots := service.NewSnapshotService(trace, nop, metric, conf, repositories, delivery,
		memory.NewScopeLocker(), repository.NewLogRepository(conf, &client.NoopClient{}))

	observed, logs := observer.New(zapcore.InfoLevel)
	job := NewSnapshotJob(zap.New(observed), snapshots)
	// UTC 7/2 00:30 執行，擷取 7/1
	job.now = func() time.Time { return time.Date(2025, time.July, 2, 0, 30, 0, 0, time.UTC) }
	job.Run()

	entries := logs.FilterMessage("snapshot job finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "2025-07-01", fields["date"])
	assert.Equal(t, int64(2), fields["written"])
	assert.Equal(t, int64(0), fields["failed"])
}
