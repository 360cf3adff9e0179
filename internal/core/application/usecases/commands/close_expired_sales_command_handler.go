package commands

import (
	"context"
	"time"
)

// CloseExpiredSalesCommandHandler handles automatic closing of draft sales
// whose order cutoff has passed. All eligible drafts close in one
// transaction; a rerun with nothing to close is a no-op.
type CloseExpiredSalesCommandHandler struct {
	uowFactory  SaleUoWFactory
	cutoffHours int
	now         func() time.Time
}

// NewCloseExpiredSalesCommandHandler creates a handler for automatic closing.
// cutoffHours configures the order window; now injects the clock.
func NewCloseExpiredSalesCommandHandler(
	uowFactory SaleUoWFactory,
	cutoffHours int,
	now func() time.Time,
) CloseExpiredSalesCommandHandler {
	return CloseExpiredSalesCommandHandler{
		uowFactory:  uowFactory,
		cutoffHours: cutoffHours,
		now:         now,
	}
}

// Handle processes the automatic closing command.
// The repository selects drafts whose cutoff lies before the injected
// instant; each one moves to closed through the normal transition.
func (h CloseExpiredSalesCommandHandler) Handle(ctx context.Context, cmd CloseExpiredSalesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saleRepo := uow.SaleRepository()

	expired, err := saleRepo.GetAllDraftBefore(ctx, h.now(), h.cutoffHours)
	if err != nil {
		return err
	}

	for _, expiredSale := range expired {
		if err = expiredSale.Close(); err != nil {
			return err
		}

		if err = saleRepo.Update(ctx, expiredSale); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
