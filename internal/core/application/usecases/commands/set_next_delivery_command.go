package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrSetNextDeliveryCommandIsNotConstructed = errors.New(
	"SetNextDeliveryCommand must be created via NewSetNextDeliveryCommand constructor",
)

// SetNextDeliveryCommand represents a request to mark one pending stop as
// the next delivery, overriding the route's natural order.
type SetNextDeliveryCommand struct { //nolint:recvcheck //using for validation
	saleID     kernel.UUID
	ownerID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetNextDeliveryCommand creates a command to mark the next delivery stop.
func NewSetNextDeliveryCommand(saleID, ownerID, customerID kernel.UUID) (SetNextDeliveryCommand, error) {
	command := SetNextDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setCustomerID(customerID),
	); err != nil {
		return SetNextDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetNextDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSetNextDeliveryCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale being delivered.
func (c SetNextDeliveryCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c SetNextDeliveryCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerID returns the customer whose stop becomes the next delivery.
func (c SetNextDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *SetNextDeliveryCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *SetNextDeliveryCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *SetNextDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
