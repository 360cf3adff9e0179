package commands

import (
	"context"
)

// DeleteProviderCommandHandler handles the business logic for supplier removal.
type DeleteProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewDeleteProviderCommandHandler creates a handler for supplier removal.
func NewDeleteProviderCommandHandler(uowFactory ProviderUoWFactory) DeleteProviderCommandHandler {
	return DeleteProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider deletion command.
func (h DeleteProviderCommandHandler) Handle(ctx context.Context, cmd DeleteProviderCommand) error {
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

	providerRepo := uow.ProviderRepository()

	existing, err := providerRepo.GetForOwner(ctx, cmd.ProviderID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = providerRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
