package commands

import (
	"context"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/product"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// ErrOrderWindowClosed is returned when a sale's order window has passed:
// the cutoff lead time before the delivery date has been reached.
var ErrOrderWindowClosed = errs.NewInvalidStateError("accept orders", "past cutoff")

// CreateSaleCommandHandler handles the business logic for sale creation.
// Validates customer references, snapshots product prices into the sale's
// items, and enforces the order cutoff window.
//
// Example:
//
//	handler := NewCreateSaleCommandHandler(uowFactory, sale.DefaultCutoffHours, time.Now)
//	cmd, _ := NewCreateSaleCommand(saleID, ownerID, deliveryDate, lines)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // Order window already closed for this delivery date
//	}
type CreateSaleCommandHandler struct {
	uowFactory  SaleEditingUoWFactory
	cutoffHours int
	now         func() time.Time
}

// NewCreateSaleCommandHandler creates a handler for sale creation.
// cutoffHours configures the order window; now injects the clock.
func NewCreateSaleCommandHandler(
	uowFactory SaleEditingUoWFactory,
	cutoffHours int,
	now func() time.Time,
) CreateSaleCommandHandler {
	return CreateSaleCommandHandler{
		uowFactory:  uowFactory,
		cutoffHours: cutoffHours,
		now:         now,
	}
}

// Handle processes the sale creation command.
// Every referenced customer and product must exist and belong to the
// requesting owner; each item copies the product's current prices so later
// catalog edits never change this sale.
func (h CreateSaleCommandHandler) Handle(ctx context.Context, cmd CreateSaleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !sale.AcceptsOrders(sale.StatusDraft, cmd.DeliveryDate(), h.now(), h.cutoffHours) {
		return ErrOrderWindowClosed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := buildSaleItems(ctx, uow, cmd.OwnerID(), cmd.Lines())
	if err != nil {
		return err
	}

	newSale, err := sale.NewSale(cmd.SaleID(), cmd.OwnerID(), cmd.DeliveryDate(), items)
	if err != nil {
		return err
	}

	if err = uow.SaleRepository().Add(ctx, newSale); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildSaleItems resolves the referenced customers and products and builds
// sale items with snapshot prices. Shared by sale creation and item editing.
func buildSaleItems(
	ctx context.Context,
	uow SaleEditingUoW,
	ownerID kernel.UUID,
	lines []SaleLine,
) ([]*sale.Item, error) {
	customerIDs := make([]kernel.UUID, 0, len(lines))
	productIDs := make([]kernel.UUID, 0, len(lines))
	seenCustomers := make(map[kernel.UUID]struct{}, len(lines))
	seenProducts := make(map[kernel.UUID]struct{}, len(lines))

	for _, line := range lines {
		if _, ok := seenCustomers[line.CustomerID]; !ok {
			seenCustomers[line.CustomerID] = struct{}{}
			customerIDs = append(customerIDs, line.CustomerID)
		}
		if _, ok := seenProducts[line.ProductID]; !ok {
			seenProducts[line.ProductID] = struct{}{}
			productIDs = append(productIDs, line.ProductID)
		}
	}

	customers, err := uow.CustomerRepository().GetAllByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if !c.OwnerID().IsEqual(ownerID) {
			return nil, errs.NewObjectNotFoundError("customer", c.ID().String())
		}
	}

	products, err := uow.ProductRepository().GetAllByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productByID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if !p.OwnerID().IsEqual(ownerID) {
			return nil, errs.NewObjectNotFoundError("product", p.ID().String())
		}
		productByID[p.ID()] = p
	}

	items := make([]*sale.Item, 0, len(lines))
	for _, line := range lines {
		catalogProduct, ok := productByID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}

		item, itemErr := sale.NewItem(
			line.CustomerID, line.ProductID, line.Quantity,
			catalogProduct.BuyPrice(), catalogProduct.SellPrice(),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}
