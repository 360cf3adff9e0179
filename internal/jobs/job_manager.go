package jobs

import (
	"fmt"
	"log/slog"

	"breakfast/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	saleClosingJob *SaleClosingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	closeExpiredSalesHandler commands.CloseExpiredSalesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		saleClosingJob: NewSaleClosingJob(closeExpiredSalesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.saleClosingJob.Start(); err != nil {
		return fmt.Errorf("failed to start sale closing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.saleClosingJob.Stop()
}
