package commands

import (
	"context"
)

// ResetDeliveryStepCommandHandler orchestrates delivery stop resets.
// Returning a completed stop to pending restores the credit that was applied
// at completion to the customer's balance, in the same transaction.
type ResetDeliveryStepCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewResetDeliveryStepCommandHandler creates a handler for stop resets.
func NewResetDeliveryStepCommandHandler(uowFactory DeliveryUoWFactory) ResetDeliveryStepCommandHandler {
	return ResetDeliveryStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop reset command.
// The sale's status is untouched: delivery completion is one-way, so a
// reset on a completed sale only reopens the individual stop.
func (h ResetDeliveryStepCommandHandler) Handle(ctx context.Context, cmd ResetDeliveryStepCommand) error {
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

	restoredCredit, err := existing.ResetStep(cmd.CustomerID())
	if err != nil {
		return err
	}

	if !restoredCredit.IsZero() {
		customerRepo := uow.CustomerRepository()

		stepCustomer, custErr := customerRepo.Get(ctx, cmd.CustomerID())
		if custErr != nil {
			return custErr
		}

		stepCustomer.AddCredit(restoredCredit)
		if custErr = customerRepo.Update(ctx, stepCustomer); custErr != nil {
			return custErr
		}
	}

	if err = saleRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
