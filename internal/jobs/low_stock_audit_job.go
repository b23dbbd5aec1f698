package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/queries"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LowStockAuditJob periodically sweeps the catalog for products at or below
// their low stock threshold. Checkout already alerts when a reservation
// crosses the threshold; the sweep catches products that were seeded low or
// whose alert was lost.
type LowStockAuditJob struct {
	handler queries.GetInventoryQueryHandler
	alerter ports.Alerter
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAuditJob creates a job that audits stock levels every five minutes.
func NewLowStockAuditJob(handler queries.GetInventoryQueryHandler,
	alerter ports.Alerter, logger *slog.Logger) *LowStockAuditJob {
	return &LowStockAuditJob{
		handler: handler,
		alerter: alerter,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_audit_job"),
	}
}

// Start begins the audit job on a five minute schedule.
func (j *LowStockAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetInventoryQuery(true)

		lowStock, qErr := j.handler.Handle(ctx, query)
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Low stock audit failed", "error", qErr)
			return
		}

		for _, p := range lowStock {
			if aErr := j.alerter.Alert(ctx,
				"Low stock: "+p.Name,
				fmt.Sprintf("%s is down to %d units (threshold %d)",
					p.Name, p.Stock, p.LowStockThreshold)); aErr != nil {
				j.logger.ErrorContext(ctx, "Low stock alert failed",
					"product", p.Name, "error", aErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock audit job started (running every 5 minutes)")
	return nil
}

// Stop stops the audit job.
func (j *LowStockAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock audit job stopped")
}
