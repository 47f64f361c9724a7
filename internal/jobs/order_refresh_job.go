package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultOrderRefreshSchedule refetches the kitchen list every 30 seconds.
const DefaultOrderRefreshSchedule = "*/30 * * * * *"

type Refresher interface {
	Refresh(ctx context.Context) error
}

// OrderRefreshJob periodically refetches the staff order list. Push events
// already trigger refetches; the job covers events lost while the
// connection to the broker was down.
type OrderRefreshJob struct {
	refresher Refresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrderRefreshJob(refresher Refresher, schedule string, logger *slog.Logger) *OrderRefreshJob {
	if schedule == "" {
		schedule = DefaultOrderRefreshSchedule
	}
	return &OrderRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "order_refresh_job"),
	}
}

func (j *OrderRefreshJob) Name() string {
	return "order refresh"
}

func (j *OrderRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "schedule", j.schedule)
	return nil
}

func (j *OrderRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}

func (j *OrderRefreshJob) run() {
	ctx := context.Background()
	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "Order refresh job failed", "error", err)
	}
}
