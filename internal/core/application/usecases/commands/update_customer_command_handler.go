package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles the business logic for customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
// The customer is loaded scoped to the requesting owner, so another user's
// customer surfaces as not found.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	existing, err := customerRepo.GetForOwner(ctx, cmd.CustomerID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = existing.UpdateDetails(cmd.Name(), cmd.Phone(), cmd.Address(), cmd.Notes()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
