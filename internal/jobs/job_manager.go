package jobs

import (
	"fmt"
	"log/slog"

	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/commands"
	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/queries"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAuditJob      *LowStockAuditJob
	stalePendingOrdersJob *StalePendingOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	inventoryHandler queries.GetInventoryQueryHandler,
	alerter ports.Alerter,
	orderUoWFactory commands.OrderUoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAuditJob:      NewLowStockAuditJob(inventoryHandler, alerter, logger),
		stalePendingOrdersJob: NewStalePendingOrdersJob(orderUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock audit job: %w", err)
	}

	if err := jm.stalePendingOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockAuditJob.Stop()
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAuditJob.Stop()
	jm.stalePendingOrdersJob.Stop()
}
