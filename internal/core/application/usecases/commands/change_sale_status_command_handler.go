package commands

import (
	"context"

	"breakfast/internal/core/domain/model/sale"
)

// ChangeSaleStatusCommandHandler handles manual sale status changes:
// closing a draft and reopening a closed sale.
type ChangeSaleStatusCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewChangeSaleStatusCommandHandler creates a handler for manual status changes.
func NewChangeSaleStatusCommandHandler(uowFactory SaleUoWFactory) ChangeSaleStatusCommandHandler {
	return ChangeSaleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// The transition table on the aggregate rejects anything but draft-closed
// moves in either direction.
func (h ChangeSaleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeSaleStatusCommand) error {
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

	switch cmd.Target() {
	case sale.StatusClosed:
		err = existing.Close()
	default:
		err = existing.Reopen()
	}
	if err != nil {
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
