package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Orders still Pending after this long are flagged for the back office.
const stalePendingCutoff = 24 * time.Hour

// StalePendingOrdersJob reports orders that have sat in Pending for too long,
// which usually means the warehouse missed them. The job only reports: moving
// an order forward stays a human decision.
type StalePendingOrdersJob struct {
	uowFactory commands.OrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalePendingOrdersJob creates a job that checks for stale orders hourly.
func NewStalePendingOrdersJob(uowFactory commands.OrderUoWFactory,
	logger *slog.Logger) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_pending_orders_job"),
	}
}

// Start begins the job on an hourly schedule.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started (running hourly)")
	return nil
}

func (j *StalePendingOrdersJob) run(ctx context.Context) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Stale pending orders check failed", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-stalePendingCutoff)
	stale, err := uow.OrderRepository().GetPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending orders check failed", "error", err)
		return
	}

	for _, o := range stale {
		j.logger.WarnContext(ctx, "Order stuck in Pending",
			"orderId", o.ID().String(),
			"trackingId", o.TrackingID(),
			"age", time.Since(o.CreatedAt()).Round(time.Minute).String())
	}
}

// Stop stops the job.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}
