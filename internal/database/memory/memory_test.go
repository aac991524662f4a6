package memory

import (
	"context"
	"testing"
	"time"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	repositories := NewRepositories()

	lead, err := repositories.Employees.Create(ctx, &model.Employee{DisplayName: "Lead", Role: core.RoleTeamLeader})
	require.NoError(t, err)
	assert.False(t, lead.ID.IsZero())
	assert.Equal(t, core.EmployeeActive, lead.Status)

	member, err := repositories.Employees.Create(ctx, &model.Employee{DisplayName: "Member", Role: core.RoleRecruiter, ReportToEmployeeID: &lead.ID})
	require.NoError(t, err)
	_, err = repositories.Employees.Create(ctx, &model.Employee{DisplayName: "Admin", Role: core.RoleAdmin})
	require.NoError(t, err)

	reports, err := repositories.Employees.ListByReportTo(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, member.ID, reports[0].ID)

	delivery, err := repositories.Employees.ListByRoles(ctx, core.DeliveryRoles...)
	require.NoError(t, err)
	assert.Len(t, delivery, 2)

	_, err = repositories.Employees.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestSubmissionRepository_CountByRecruiterOnDate(t *testing.T) {
	ctx := context.Background()
	repositories := NewRepositories()
	recruiter := primitive.NewObjectID()
	taipei := time.FixedZone("UTC+8", 8*60*60)

	for _, at := range []time.Time{
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 1, 23, 59, 59, 0, time.UTC),
		// 台北 7/2 07:00 仍是 UTC 7/1
		time.Date(2025, time.July, 2, 7, 0, 0, 0, taipei),
		time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
	} {
		_, err := repositories.Submissions.Create(ctx, &model.ResumeSubmission{RecruiterID: recruiter, SubmittedAt: at})
		require.NoError(t, err)
	}
	_, err := repositories.Submissions.Create(ctx, &model.ResumeSubmission{RecruiterID: primitive.NewObjectID(), SubmittedAt: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	count, err := repositories.Submissions.CountByRecruiterOnDate(ctx, recruiter, core.MustParseCalendarDate("2025-07-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = repositories.Submissions.Create(ctx, &model.ResumeSubmission{RecruiterID: recruiter})
	assert.ErrorIs(t, err, model.ErrMissingSubmittedAt)
}

func TestSnapshotRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.July, 2, 1, 0, 0, 0, time.UTC)
	repositories := NewStore().WithClock(func() time.Time { return now }).Repositories()
	date := core.MustParseCalendarDate("2025-07-01")
	team := primitive.NewObjectID()

	first, err := repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{Date: date, ScopeType: core.ScopeTeam, ScopeID: &team, Delivered: 1})
	require.NoError(t, err)

	now = now.Add(time.Minute)
	second, err := repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{Date: date, ScopeType: core.ScopeTeam, ScopeID: &team, Delivered: 5})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, now, second.UpdatedAt)

	// 同日 organization（null scope）為獨立一筆
	_, err = repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{Date: date, ScopeType: core.ScopeOrganization, Delivered: 9})
	require.NoError(t, err)

	stored, err := repositories.Snapshots.Get(ctx, database.SnapshotKey{Date: date, ScopeType: core.ScopeTeam, ScopeID: &team})
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Delivered)

	org, err := repositories.Snapshots.ListByDateRange(ctx, database.SnapshotRange{Start: date, End: date, ScopeType: core.ScopeOrganization})
	require.NoError(t, err)
	require.Len(t, org, 1)
	assert.Nil(t, org[0].ScopeID)
	assert.Equal(t, 9, org[0].Delivered)
}

func TestSnapshotRepository_NullScopeIsolation(t *testing.T) {
	ctx := context.Background()
	repositories := NewRepositories()
	date := core.MustParseCalendarDate("2025-07-01")
	zero := primitive.NilObjectID

	_, err := repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{Date: date, ScopeType: core.ScopeTeam, ScopeID: &zero, Delivered: 4})
	require.NoError(t, err)

	// 全零 ObjectID 與 null scope 為不同的 key
	_, err = repositories.Snapshots.Get(ctx, database.SnapshotKey{Date: date, ScopeType: core.ScopeTeam})
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = repositories.Snapshots.Upsert(ctx, &model.DailyMetricsSnapshot{Date: date, ScopeType: core.ScopeTeam, Delivered: 7})
	require.NoError(t, err)

	withZero, err := repositories.Snapshots.Get(ctx, database.SnapshotKey{Date: date, ScopeType: core.ScopeTeam, ScopeID: &zero})
	require.NoError(t, err)
	assert.Equal(t, 4, withZero.Delivered)
	require.NotNil(t, withZero.ScopeID)

	withNull, err := repositories.Snapshots.Get(ctx, database.SnapshotKey{Date: date, ScopeType: core.ScopeTeam})
	require.NoError(t, err)
	assert.Equal(t, 7, withNull.Delivered)
	assert.Nil(t, withNull.ScopeID)
	assert.NotEqual(t, withZero.ID, withNull.ID)
}

func TestTargetMappingRepository(t *testing.T) {
	ctx := context.Background()
	repositories := NewRepositories()
	lead, member := primitive.NewObjectID(), primitive.NewObjectID()

	for _, m := range []*model.TargetMapping{
		{TeamLeadID: lead, TeamMemberID: member, Quarter: core.QuarterQ1, Year: 2025},
		{TeamLeadID: lead, TeamMemberID: member, Quarter: core.QuarterQ4, Year: 2024},
		{TeamLeadID: lead, TeamMemberID: member, Quarter: core.QuarterQ3, Year: 2025},
	} {
		_, err := repositories.TargetMappings.Create(ctx, m)
		require.NoError(t, err)
	}

	byLead, err := repositories.TargetMappings.ListByTeamLead(ctx, lead)
	require.NoError(t, err)
	require.Len(t, byLead, 3)
	assert.Equal(t, core.QuarterQ3, byLead[0].Quarter)
	assert.Equal(t, 2024, byLead[2].Year)

	byMember, err := repositories.TargetMappings.ListByTeamMember(ctx, lead)
	require.NoError(t, err)
	assert.Empty(t, byMember)

	closures := 4
	updated, err := repositories.TargetMappings.UpdateAchievement(ctx, byLead[0].ID, database.Achievement{Closures: &closures})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Closures)
	assert.Zero(t, updated.TargetAchieved)
}

func TestScopeLocker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	locker := NewScopeLocker()
	locker.clock = func() time.Time { return now }

	release, err := locker.TryLock(ctx, "2025-07-01:organization", time.Minute)
	require.NoError(t, err)

	_, err = locker.TryLock(ctx, "2025-07-01:organization", time.Minute)
	assert.ErrorIs(t, err, database.ErrScopeLocked)

	// 不同 key 互不影響
	other, err := locker.TryLock(ctx, "2025-07-02:organization", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	again, err := locker.TryLock(ctx, "2025-07-01:organization", time.Minute)
	require.NoError(t, err)

	// 過期後可被他人取得，舊持有者的 release 不影響新鎖
	now = now.Add(2 * time.Minute)
	takeover, err := locker.TryLock(ctx, "2025-07-01:organization", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
	_, err = locker.TryLock(ctx, "2025-07-01:organization", time.Minute)
	assert.ErrorIs(t, err, database.ErrScopeLocked)
	require.NoError(t, takeover(ctx))
}
