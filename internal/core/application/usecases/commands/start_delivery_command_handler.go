package commands

import (
	"context"

	"breakfast/internal/core/domain/services"
)

// StartDeliveryCommandHandler orchestrates the start of a delivery run.
// Loads the sale and its customers, derives the visiting order through the
// RoutePlanner, and persists the generated route together with the status
// change in one transaction.
//
// Concurrency: two simultaneous starts for the same sale both pass the
// in-memory guard, but the unique index on (sale_id, customer_id) makes the
// second commit fail with a conflict, so exactly one route survives.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
// Requires a DeliveryUoWFactory for coordinating sale and customer repositories.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start delivery command.
// The sale must be closed and contain at least one customer; a sale with an
// existing route is rejected with a conflict.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	customers, err := uow.CustomerRepository().GetAllByIDs(ctx, existing.DistinctCustomerIDs())
	if err != nil {
		return err
	}

	ordered, err := services.NewRoutePlanner().Plan(customers)
	if err != nil {
		return err
	}

	if err = existing.StartDelivery(ordered); err != nil {
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
