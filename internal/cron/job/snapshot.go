package job

import (
	"context"
	"time"

	"talentops/internal/core"
	"talentops/internal/service"

	"go.uber.org/zap"
)

const snapshotJobTimeout = 10 * time.Minute

// SnapshotJob 每晚擷取前一天（已結束）的快照
type SnapshotJob struct {
	logger          *zap.Logger
	snapshotService *service.SnapshotService
	now             func() time.Time
}

func NewSnapshotJob(logger *zap.Logger, snapshotService *service.SnapshotService) *SnapshotJob {
	return &SnapshotJob{logger: logger, snapshotService: snapshotService, now: time.Now}
}

func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotJobTimeout)
	defer cancel()

	date := core.DateOf(j.now()).AddDays(-1)
	result, err := j.snapshotService.CaptureAll(ctx, date)
	if result == nil {
		j.logger.Error("snapshot job aborted", zap.String("date", date.String()), zap.Error(err))
		return
	}
	fields := []zap.Field{
		zap.String("date", result.Date),
		zap.Int("written", result.Written),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	}
	if err != nil {
		j.logger.Error("snapshot job finished with failures", append(fields, zap.Error(err))...)
		return
	}
	j.logger.Info("snapshot job finished", fields...)
}
