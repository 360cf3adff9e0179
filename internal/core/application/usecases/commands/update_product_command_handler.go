package commands

import (
	"context"
)

// UpdateProductCommandHandler handles the business logic for catalog edits.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	existing, err := productRepo.GetForOwner(ctx, cmd.ProductID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = existing.UpdateDetails(cmd.Name(), cmd.BuyPrice(), cmd.SellPrice()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
