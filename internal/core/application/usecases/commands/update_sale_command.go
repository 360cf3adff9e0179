package commands

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrUpdateSaleCommandIsNotConstructed = errors.New(
	"UpdateSaleCommand must be created via NewUpdateSaleCommand constructor",
)

// UpdateSaleCommand represents a request to replace a draft sale's product
// lines and optionally move its delivery date. The item set is replaced as a
// whole, matching how the order form submits it.
type UpdateSaleCommand struct { //nolint:recvcheck //using for validation
	saleID       kernel.UUID
	ownerID      kernel.UUID
	deliveryDate time.Time
	lines        []SaleLine

	guard guard.ConstructorGuard
}

// NewUpdateSaleCommand creates a command to edit a draft sale.
func NewUpdateSaleCommand(
	saleID, ownerID kernel.UUID,
	deliveryDate time.Time,
	lines []SaleLine,
) (UpdateSaleCommand, error) {
	command := UpdateSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setDeliveryDate(deliveryDate),
		command.setLines(lines),
	); err != nil {
		return UpdateSaleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSaleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSaleCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale to edit.
func (c UpdateSaleCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c UpdateSaleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// DeliveryDate returns the requested delivery day.
func (c UpdateSaleCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Lines returns the replacement product lines.
func (c UpdateSaleCommand) Lines() []SaleLine {
	return c.lines
}

func (c *UpdateSaleCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *UpdateSaleCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateSaleCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *UpdateSaleCommand) setLines(lines []SaleLine) error {
	if err := validateSaleLines(lines); err != nil {
		return err
	}

	c.lines = lines
	return nil
}
