package commands

import (
	"context"

	"breakfast/internal/core/domain/model/provider"
)

// CreateProviderCommandHandler handles the business logic for supplier
// registration. Email uniqueness within the owner's directory is enforced
// by the storage layer and surfaces as a conflict.
type CreateProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewCreateProviderCommandHandler creates a handler for supplier registration.
func NewCreateProviderCommandHandler(uowFactory ProviderUoWFactory) CreateProviderCommandHandler {
	return CreateProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider creation command.
func (h CreateProviderCommandHandler) Handle(ctx context.Context, cmd CreateProviderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProvider, err := provider.NewProvider(
		cmd.ProviderID(), cmd.OwnerID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProviderRepository().Add(ctx, newProvider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
