package commands

import (
	"context"
)

// SetNextDeliveryCommandHandler handles the business logic for moving the
// next-delivery marker between pending stops.
type SetNextDeliveryCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewSetNextDeliveryCommandHandler creates a handler for next-delivery selection.
func NewSetNextDeliveryCommandHandler(uowFactory SaleUoWFactory) SetNextDeliveryCommandHandler {
	return SetNextDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the next-delivery selection command.
// The marker can only land on a pending stop; the aggregate clears it from
// every other step so at most one stop carries it.
func (h SetNextDeliveryCommandHandler) Handle(ctx context.Context, cmd SetNextDeliveryCommand) error {
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

	if err = existing.SetNextStep(cmd.CustomerID()); err != nil {
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
