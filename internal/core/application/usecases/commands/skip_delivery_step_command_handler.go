package commands

import (
	"context"
)

// SkipDeliveryStepCommandHandler handles the business logic for skipping a
// delivery stop. Skipping moves no money; it only records that the stop was
// not served and why.
type SkipDeliveryStepCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewSkipDeliveryStepCommandHandler creates a handler for stop skipping.
func NewSkipDeliveryStepCommandHandler(uowFactory SaleUoWFactory) SkipDeliveryStepCommandHandler {
	return SkipDeliveryStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop skip command.
// A skipped last pending stop completes the sale in the same commit.
func (h SkipDeliveryStepCommandHandler) Handle(ctx context.Context, cmd SkipDeliveryStepCommand) error {
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

	existing, err := saleRepo.GetForOwner(ctx, cmd.SaleID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = existing.SkipStep(cmd.CustomerID(), cmd.Reason()); err != nil {
		return err
	}

	if err = saleRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
