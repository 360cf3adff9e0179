package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to start delivering a closed sale.
// Starting generates the delivery route: one pending step per distinct
// customer, ordered by the route planner, and moves the sale to in_progress.
//
// Example:
//
//	cmd, err := NewStartDeliveryCommand(saleID, ownerID)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewStartDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // Route already generated, likely a concurrent double start
//	}
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	saleID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start delivery for a sale.
func NewStartDeliveryCommand(saleID, ownerID kernel.UUID) (StartDeliveryCommand, error) {
	command := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale to deliver.
func (c StartDeliveryCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c StartDeliveryCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *StartDeliveryCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *StartDeliveryCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
