package service

import (
	"context"
	"testing"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/client"
	"talentops/internal/database/fluentd/repository"
	"talentops/internal/database/memory"
	"talentops/internal/database/mongodb/model"
	"talentops/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fixture 以記憶體儲存組出完整的 service 依賴
type fixture struct {
	t            *testing.T
	ctx          context.Context
	conf         *config.Configuration
	clock        time.Time
	store        *memory.Store
	repositories *database.Repositories
	locker       *memory.ScopeLocker
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	policy       *TargetPolicy
	delivery     *DeliveryService
	snapshots    *SnapshotService
}

func newFixture(t *testing.T) *fixture {
	conf := &config.Configuration{}
	conf.App.Name = "talentops"
	conf.Telemetry.Metric.Enabled = true

	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		conf:  conf,
		clock: time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC),
	}
	f.store = memory.NewStore().WithClock(func() time.Time { return f.clock })
	f.repositories = f.store.Repositories()
	f.locker = memory.NewScopeLocker()
	f.trace = &telemetry.Trace{}
	f.metric = telemetry.NewMetricWithRegisterer(conf, prometheus.NewRegistry())
	f.rebuild()
	return f
}

// rebuild 修改 conf 後重新建立 service
func (f *fixture) rebuild() {
	logger := zap.NewNop()
	f.policy = NewTargetPolicy(f.conf, logger, f.metric)
	f.delivery = NewDeliveryService(f.trace, logger, f.conf, f.repositories, f.policy)
	logRepository := repository.NewLogRepository(f.conf, &client.NoopClient{})
	f.snapshots = NewSnapshotService(f.trace, logger, f.metric, f.conf, f.repositories, f.delivery, f.locker, logRepository)
}

func (f *fixture) employee(role core.EmployeeRole, reportTo *primitive.ObjectID) primitive.ObjectID {
	created, err := f.repositories.Employees.Create(f.ctx, &model.Employee{
		DisplayName:        string(role),
		Role:               role,
		ReportToEmployeeID: reportTo,
	})
	require.NoError(f.t, err)
	return created.ID
}

func (f *fixture) requirement(criticality core.Criticality, toughness core.Toughness, archived bool) primitive.ObjectID {
	created, err := f.repositories.Requirements.Create(f.ctx, &model.Requirement{
		Title:       string(criticality) + "/" + string(toughness),
		Criticality: criticality,
		Toughness:   toughness,
		Archived:    archived,
	})
	require.NoError(f.t, err)
	return created.ID
}

func (f *fixture) assign(recruiterID, requirementID primitive.ObjectID) {
	_, err := f.repositories.Assignments.Create(f.ctx, &model.RequirementAssignment{
		RecruiterID:   recruiterID,
		RequirementID: requirementID,
	})
	require.NoError(f.t, err)
}

func (f *fixture) submit(recruiterID, requirementID primitive.ObjectID, at time.Time) {
	_, err := f.repositories.Submissions.Create(f.ctx, &model.ResumeSubmission{
		RecruiterID:   recruiterID,
		RequirementID: requirementID,
		SubmittedAt:   at,
	})
	require.NoError(f.t, err)
}

func ptr[T any](value T) *T {
	return &value
}
