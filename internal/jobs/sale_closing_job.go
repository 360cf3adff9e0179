package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"breakfast/internal/core/application/usecases/commands"
)

// SaleClosingJob manages the scheduled closing of expired draft sales.
// Runs every minute so a draft never stays open past its cutoff for long.
type SaleClosingJob struct {
	handler commands.CloseExpiredSalesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSaleClosingJob creates a new job for closing expired drafts.
// Uses CloseExpiredSalesCommandHandler to process the closing on each tick.
func NewSaleClosingJob(handler commands.CloseExpiredSalesCommandHandler, logger *slog.Logger) *SaleClosingJob {
	return &SaleClosingJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "sale_closing_job"),
	}
}

// Start begins the sale closing job to run every minute.
func (j *SaleClosingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCloseExpiredSalesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Sale closing job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sale closing job started (running every minute)")
	return nil
}

// Stop stops the sale closing job.
func (j *SaleClosingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sale closing job stopped")
}
