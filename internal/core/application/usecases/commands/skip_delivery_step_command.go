package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
	"breakfast/internal/pkg/guard"
)

var ErrSkipDeliveryStepCommandIsNotConstructed = errors.New(
	"SkipDeliveryStepCommand must be created via NewSkipDeliveryStepCommand constructor",
)

// SkipDeliveryStepCommand represents a request to skip one delivery stop
// with a recorded reason.
type SkipDeliveryStepCommand struct { //nolint:recvcheck //using for validation
	saleID     kernel.UUID
	ownerID    kernel.UUID
	customerID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewSkipDeliveryStepCommand creates a command to skip a delivery stop.
// The reason is mandatory; a skip without explanation is a data-entry error.
func NewSkipDeliveryStepCommand(
	saleID, ownerID, customerID kernel.UUID,
	reason string,
) (SkipDeliveryStepCommand, error) {
	command := SkipDeliveryStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setCustomerID(customerID),
		command.setReason(reason),
	); err != nil {
		return SkipDeliveryStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SkipDeliveryStepCommand) Validate() error {
	return c.guard.Validate(ErrSkipDeliveryStepCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale being delivered.
func (c SkipDeliveryStepCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c SkipDeliveryStepCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerID returns the customer whose stop is skipped.
func (c SkipDeliveryStepCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Reason returns the recorded skip reason.
func (c SkipDeliveryStepCommand) Reason() string {
	return c.reason
}

func (c *SkipDeliveryStepCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *SkipDeliveryStepCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *SkipDeliveryStepCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SkipDeliveryStepCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("skip reason")
	}

	c.reason = reason
	return nil
}
