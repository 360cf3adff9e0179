package commands

import (
	"context"
	"time"

	"breakfast/internal/core/domain/model/sale"
)

// UpdateSaleCommandHandler handles the business logic for draft sale edits.
// Items are fully replaced with fresh price snapshots; edits past the order
// cutoff or on non-draft sales are rejected.
type UpdateSaleCommandHandler struct {
	uowFactory  SaleEditingUoWFactory
	cutoffHours int
	now         func() time.Time
}

// NewUpdateSaleCommandHandler creates a handler for draft sale edits.
func NewUpdateSaleCommandHandler(
	uowFactory SaleEditingUoWFactory,
	cutoffHours int,
	now func() time.Time,
) UpdateSaleCommandHandler {
	return UpdateSaleCommandHandler{
		uowFactory:  uowFactory,
		cutoffHours: cutoffHours,
		now:         now,
	}
}

// Handle processes the sale update command.
// The order window is checked against the sale's new delivery date, so a
// draft cannot be rescheduled into an already-closed window.
func (h UpdateSaleCommandHandler) Handle(ctx context.Context, cmd UpdateSaleCommand) error {
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

	if !existing.AcceptsOrders(h.now(), h.cutoffHours) ||
		!sale.AcceptsOrders(sale.StatusDraft, cmd.DeliveryDate(), h.now(), h.cutoffHours) {
		return ErrOrderWindowClosed
	}

	if err = existing.Reschedule(cmd.DeliveryDate()); err != nil {
		return err
	}

	items, err := buildSaleItems(ctx, uow, cmd.OwnerID(), cmd.Lines())
	if err != nil {
		return err
	}

	if err = existing.ReplaceItems(items); err != nil {
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
