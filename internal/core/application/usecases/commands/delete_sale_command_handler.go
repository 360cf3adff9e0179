package commands

import (
	"context"

	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// DeleteSaleCommandHandler handles the business logic for sale deletion.
type DeleteSaleCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewDeleteSaleCommandHandler creates a handler for sale deletion.
func NewDeleteSaleCommandHandler(uowFactory SaleUoWFactory) DeleteSaleCommandHandler {
	return DeleteSaleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sale deletion command.
// Only draft sales can be deleted; anything later is history.
func (h DeleteSaleCommandHandler) Handle(ctx context.Context, cmd DeleteSaleCommand) error {
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

	if existing.Status() != sale.StatusDraft {
		return errs.NewInvalidStateError("delete sale", existing.Status().String())
	}

	if err = saleRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
