package cron

import (
	"context"

	"talentops/config"
	"talentops/internal/cron/job"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, job.NewSnapshotJob)

type Cron struct {
	logger      *zap.Logger
	config      *config.Configuration
	server      *cron.Cron
	snapshotJob *job.SnapshotJob
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, snapshotJob *job.SnapshotJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger:      logger,
		config:      config,
		server:      server,
		snapshotJob: snapshotJob,
	}
}

func (c *Cron) Run() error {
	if spec := c.config.Performance.SnapshotCron; spec != "" {
		if _, err := c.server.AddFunc(spec, c.snapshotJob.Run); err != nil {
			return err
		}
		c.logger.Info("snapshot job scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

// Stop 等待執行中的 job 結束或 ctx 逾時
func (c *Cron) Stop(ctx context.Context) error {
	done := c.server.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
