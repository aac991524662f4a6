package command

import (
	"context"
	"errors"
	"fmt"

	"talentops/internal/core"
	"talentops/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxBackfillDays 單次補寫的天數上限
const maxBackfillDays = 366

type SnapshotHandler struct {
	logger          *zap.Logger
	snapshotService *service.SnapshotService
}

func NewSnapshotHandler(logger *zap.Logger, snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		logger:          logger,
		snapshotService: snapshotService,
	}
}

// Backfill 逐日擷取 [from, to] 的快照，任一天失敗仍繼續
func (handler *SnapshotHandler) Backfill(cmd *cobra.Command, from, to string) error {
	start, err := core.ParseCalendarDate(from)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	end := start
	if to != "" {
		if end, err = core.ParseCalendarDate(to); err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	if start.After(end) {
		return fmt.Errorf("%w: %s > %s", service.ErrInvalidDateRange, start, end)
	}
	if days := int(end.Time().Sub(start.Time()).Hours()/24) + 1; days > maxBackfillDays {
		return fmt.Errorf("backfill range of %d days exceeds %d", days, maxBackfillDays)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var failures []error
	for date := start; !date.After(end); date = date.AddDays(1) {
		result, err := handler.snapshotService.CaptureAll(ctx, date)
		if result == nil {
			return err
		}
		cmd.Printf("%s written=%d skipped=%d failed=%d\n", result.Date, result.Written, result.Skipped, result.Failed)
		if err != nil {
			handler.logger.Warn("backfill day finished with failures", zap.String("date", result.Date), zap.Error(err))
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
