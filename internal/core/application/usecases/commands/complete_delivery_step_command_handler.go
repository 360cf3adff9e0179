package commands

import (
	"context"
	"time"

	"breakfast/internal/core/domain/model/kernel"
)

// CompleteDeliveryStepCommandHandler orchestrates delivery stop completion.
// Applies available customer credit against the stop's expected total,
// deducts it from the customer's balance, and records the completion on the
// sale, all in one transaction. Once no pending stop remains the sale
// transitions to completed in the same commit.
type CompleteDeliveryStepCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewCompleteDeliveryStepCommandHandler creates a handler for stop completion.
// now injects the clock used for the completion timestamp.
func NewCompleteDeliveryStepCommandHandler(
	uowFactory DeliveryUoWFactory,
	now func() time.Time,
) CompleteDeliveryStepCommandHandler {
	return CompleteDeliveryStepCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the stop completion command.
// Credit application is capped at the smaller of the customer's balance and
// the stop's expected total, so the balance never goes negative and credit
// never exceeds what was owed.
func (h CompleteDeliveryStepCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryStepCommand) error {
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
	customerRepo := uow.CustomerRepository()

	existing, err := saleRepo.GetForOwner(ctx, cmd.SaleID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	stepCustomer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	expected := kernel.ZeroMoney()
	for _, item := range existing.Items() {
		if item.CustomerID().IsEqual(cmd.CustomerID()) {
			expected = expected.Add(item.Revenue())
		}
	}

	creditApplied := stepCustomer.ApplicableCredit(expected)

	if err = existing.CompleteStep(cmd.CustomerID(), cmd.AmountCollected(), creditApplied, h.now()); err != nil {
		return err
	}

	if !creditApplied.IsZero() {
		if err = stepCustomer.DeductCredit(creditApplied); err != nil {
			return err
		}
		if err = customerRepo.Update(ctx, stepCustomer); err != nil {
			return err
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
