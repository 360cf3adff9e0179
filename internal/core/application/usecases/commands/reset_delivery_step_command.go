package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrResetDeliveryStepCommandIsNotConstructed = errors.New(
	"ResetDeliveryStepCommand must be created via NewResetDeliveryStepCommand constructor",
)

// ResetDeliveryStepCommand represents a request to return a delivery stop to
// pending, undoing a mistaken completion or skip. Credit that was applied on
// completion flows back to the customer; a completed sale stays completed.
type ResetDeliveryStepCommand struct { //nolint:recvcheck //using for validation
	saleID     kernel.UUID
	ownerID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetDeliveryStepCommand creates a command to reset a delivery stop.
func NewResetDeliveryStepCommand(saleID, ownerID, customerID kernel.UUID) (ResetDeliveryStepCommand, error) {
	command := ResetDeliveryStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setCustomerID(customerID),
	); err != nil {
		return ResetDeliveryStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetDeliveryStepCommand) Validate() error {
	return c.guard.Validate(ErrResetDeliveryStepCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale being delivered.
func (c ResetDeliveryStepCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c ResetDeliveryStepCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerID returns the customer whose stop is reset.
func (c ResetDeliveryStepCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ResetDeliveryStepCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *ResetDeliveryStepCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *ResetDeliveryStepCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
