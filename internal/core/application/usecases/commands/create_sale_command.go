package commands

import (
	"errors"
	"fmt"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrCreateSaleCommandIsNotConstructed = errors.New(
	"CreateSaleCommand must be created via NewCreateSaleCommand constructor",
)

// SaleLine is one requested product line within a sale command: a customer,
// a product, and a quantity. Prices are not part of the request; the handler
// snapshots them from the catalog.
type SaleLine struct {
	CustomerID kernel.UUID
	ProductID  kernel.UUID
	Quantity   int
}

// CreateSaleCommand represents a request to create a new draft sale for a
// delivery date, with its initial product lines.
//
// Example:
//
//	lines := []SaleLine{{CustomerID: customerID, ProductID: productID, Quantity: 2}}
//	cmd, err := NewCreateSaleCommand(kernel.NewUUID(), ownerID, deliveryDate, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid sale data: %w", err)
//	}
//
//	handler := NewCreateSaleCommandHandler(uowFactory, cutoffHours, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create sale: %w", err)
//	}
type CreateSaleCommand struct { //nolint:recvcheck //using for validation
	saleID       kernel.UUID
	ownerID      kernel.UUID
	deliveryDate time.Time
	lines        []SaleLine

	guard guard.ConstructorGuard
}

// NewCreateSaleCommand creates a command to register a new draft sale.
// Validates identifiers, the delivery date, and every line.
func NewCreateSaleCommand(
	saleID, ownerID kernel.UUID,
	deliveryDate time.Time,
	lines []SaleLine,
) (CreateSaleCommand, error) {
	command := CreateSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setDeliveryDate(deliveryDate),
		command.setLines(lines),
	); err != nil {
		return CreateSaleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSaleCommand) Validate() error {
	return c.guard.Validate(ErrCreateSaleCommandIsNotConstructed)
}

// SaleID returns the unique identifier for the new sale.
func (c CreateSaleCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the user creating the sale.
func (c CreateSaleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// DeliveryDate returns the requested delivery day.
func (c CreateSaleCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Lines returns the requested product lines.
func (c CreateSaleCommand) Lines() []SaleLine {
	return c.lines
}

func (c *CreateSaleCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *CreateSaleCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateSaleCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateSaleCommand) setLines(lines []SaleLine) error {
	if err := validateSaleLines(lines); err != nil {
		return err
	}

	c.lines = lines
	return nil
}

// validateSaleLines checks identifiers and quantities for every line.
func validateSaleLines(lines []SaleLine) error {
	for i, line := range lines {
		if err := line.CustomerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d].customer_id", i), err)
		}
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d].product_id", i), err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("lines[%d].quantity", i), line.Quantity, 1, "unbounded")
		}
	}
	return nil
}
