package commands

import (
	"context"
)

// ReorderRouteCommandHandler handles the business logic for route reordering.
// Step statuses, timestamps, and collected amounts survive reordering; only
// the sequence positions change.
type ReorderRouteCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewReorderRouteCommandHandler creates a handler for route reordering.
func NewReorderRouteCommandHandler(uowFactory SaleUoWFactory) ReorderRouteCommandHandler {
	return ReorderRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route reorder command.
// The proposed order must be a permutation of the customers already in the
// route; the aggregate rejects additions, omissions, and duplicates.
func (h ReorderRouteCommandHandler) Handle(ctx context.Context, cmd ReorderRouteCommand) error {
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

	if err = existing.ReorderRoute(cmd.OrderedCustomers()); err != nil {
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
