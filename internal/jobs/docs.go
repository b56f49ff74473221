// Package jobs provides scheduled background tasks for the shop.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel orders that were
// created but never placed within the configured time-to-live.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, ttl, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
