package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrCompleteDeliveryStepCommandIsNotConstructed = errors.New(
	"CompleteDeliveryStepCommand must be created via NewCompleteDeliveryStepCommand constructor",
)

// CompleteDeliveryStepCommand represents a request to mark one delivery stop
// as served, recording the cash amount collected at the door.
//
// Example:
//
//	amount, _ := kernel.NewMoneyFromFloat(12.50)
//	cmd, err := NewCompleteDeliveryStepCommand(saleID, ownerID, customerID, amount)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewCompleteDeliveryStepCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("completion failed: %w", err)
//	}
type CompleteDeliveryStepCommand struct { //nolint:recvcheck //using for validation
	saleID          kernel.UUID
	ownerID         kernel.UUID
	customerID      kernel.UUID
	amountCollected kernel.Money

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryStepCommand creates a command to complete a delivery stop.
// amountCollected is the cash received; Money construction already rejects
// negative amounts, and zero is a valid fully-on-credit payment.
func NewCompleteDeliveryStepCommand(
	saleID, ownerID, customerID kernel.UUID,
	amountCollected kernel.Money,
) (CompleteDeliveryStepCommand, error) {
	command := CompleteDeliveryStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
		command.setCustomerID(customerID),
	); err != nil {
		return CompleteDeliveryStepCommand{}, err
	}

	command.amountCollected = amountCollected
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryStepCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale being delivered.
func (c CompleteDeliveryStepCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c CompleteDeliveryStepCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerID returns the customer whose stop is completed.
func (c CompleteDeliveryStepCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AmountCollected returns the cash amount received at the door.
func (c CompleteDeliveryStepCommand) AmountCollected() kernel.Money {
	return c.amountCollected
}

func (c *CompleteDeliveryStepCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *CompleteDeliveryStepCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CompleteDeliveryStepCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
