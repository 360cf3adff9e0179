package commands

import (
	"context"
)

// UpdateProviderCommandHandler handles the business logic for supplier edits.
type UpdateProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewUpdateProviderCommandHandler creates a handler for supplier edits.
func NewUpdateProviderCommandHandler(uowFactory ProviderUoWFactory) UpdateProviderCommandHandler {
	return UpdateProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider update command.
func (h UpdateProviderCommandHandler) Handle(ctx context.Context, cmd UpdateProviderCommand) error {
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

	if err = existing.UpdateDetails(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = providerRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
