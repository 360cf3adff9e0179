// Package jobs provides scheduled background tasks for the breakfast service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order workflow.
//
// # Available Jobs
//
// 1. SaleClosingJob - Runs every minute to close draft sales whose order
// cutoff has passed, so no new lines slip in after purchasing starts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(closeExpiredSalesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The closing job logs failures and retries on the next tick; closing is
// idempotent, so a rerun over the same drafts is harmless.
package jobs
