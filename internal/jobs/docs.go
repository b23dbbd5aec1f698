// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations outside the request path.
//
// # Available Jobs
//
// 1. LowStockAuditJob - Runs every five minutes to alert on products at or below their low stock threshold
// 2. StalePendingOrdersJob - Runs hourly to flag orders stuck in Pending for more than a day
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(inventoryHandler, alerter, orderUoWFactory, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and skip the tick; the next run retries from scratch
// - Neither job mutates state, so a failed run never leaves partial work behind
// - Failed job starts will stop any already running jobs
package jobs
