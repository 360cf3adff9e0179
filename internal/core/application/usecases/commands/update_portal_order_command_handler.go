package commands

import (
	"context"
	"time"
)

// UpdatePortalOrderCommandHandler handles a customer replacing their own
// order through the self-service page. The access token identifies the
// customer; the sale must still accept orders under the cutoff policy.
// Zero-quantity lines are dropped, so an all-zero submission clears the
// customer's order.
type UpdatePortalOrderCommandHandler struct {
	uowFactory  SaleEditingUoWFactory
	cutoffHours int
	now         func() time.Time
}

// NewUpdatePortalOrderCommandHandler creates a handler for customer order
// updates.
func NewUpdatePortalOrderCommandHandler(
	uowFactory SaleEditingUoWFactory,
	cutoffHours int,
	now func() time.Time,
) UpdatePortalOrderCommandHandler {
	return UpdatePortalOrderCommandHandler{
		uowFactory:  uowFactory,
		cutoffHours: cutoffHours,
		now:         now,
	}
}

// Handle processes the portal order update command. The sale must belong
// to the account that owns the customer; other sales are reported as not
// found so the token reveals nothing about them.
func (h UpdatePortalOrderCommandHandler) Handle(ctx context.Context, cmd UpdatePortalOrderCommand) error {
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

	buyer, err := uow.CustomerRepository().GetByAccessToken(ctx, cmd.AccessToken())
	if err != nil {
		return err
	}

	saleRepo := uow.SaleRepository()

	existing, err := saleRepo.GetForOwner(ctx, cmd.SaleID(), buyer.OwnerID())
	if err != nil {
		return err
	}

	if !existing.AcceptsOrders(h.now(), h.cutoffHours) {
		return ErrOrderWindowClosed
	}

	lines := make([]SaleLine, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		if line.Quantity == 0 {
			continue
		}
		lines = append(lines, SaleLine{
			CustomerID: buyer.ID(),
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
		})
	}

	items, err := buildSaleItems(ctx, uow, buyer.OwnerID(), lines)
	if err != nil {
		return err
	}

	if err = existing.ReplaceCustomerItems(buyer.ID(), items); err != nil {
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
