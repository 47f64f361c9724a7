package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCartExpirySchedule runs the sweep at the top of every minute.
const DefaultCartExpirySchedule = "0 * * * * *"

type CartExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireCartsCommand) (int64, error)
}

// CartExpiryJob deletes carts whose time to live has passed.
type CartExpiryJob struct {
	handler  CartExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartExpiryJob creates the sweep. An empty schedule falls back to
// DefaultCartExpirySchedule.
func NewCartExpiryJob(handler CartExpirer, schedule string, logger *slog.Logger) *CartExpiryJob {
	if schedule == "" {
		schedule = DefaultCartExpirySchedule
	}
	return &CartExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_expiry_job"),
	}
}

func (j *CartExpiryJob) Name() string {
	return "cart expiry"
}

func (j *CartExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart expiry job started", "schedule", j.schedule)
	return nil
}

func (j *CartExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart expiry job stopped")
}

func (j *CartExpiryJob) run() {
	ctx := context.Background()
	removed, err := j.handler.Handle(ctx, commands.NewExpireCartsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired carts removed", "count", removed)
	}
}
