package commands

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrDeleteSaleCommandIsNotConstructed = errors.New(
	"DeleteSaleCommand must be created via NewDeleteSaleCommand constructor",
)

// DeleteSaleCommand represents a request to delete a draft sale.
// Closed and delivered sales are part of the history and cannot be deleted.
type DeleteSaleCommand struct { //nolint:recvcheck //using for validation
	saleID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteSaleCommand creates a command to delete a draft sale.
func NewDeleteSaleCommand(saleID, ownerID kernel.UUID) (DeleteSaleCommand, error) {
	command := DeleteSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSaleID(saleID),
		command.setOwnerID(ownerID),
	); err != nil {
		return DeleteSaleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSaleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSaleCommandIsNotConstructed)
}

// SaleID returns the identifier of the sale to delete.
func (c DeleteSaleCommand) SaleID() kernel.UUID {
	return c.saleID
}

// OwnerID returns the identifier of the requesting user.
func (c DeleteSaleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *DeleteSaleCommand) setSaleID(saleID kernel.UUID) error {
	if err := saleID.Validate(); err != nil {
		return err
	}

	c.saleID = saleID
	return nil
}

func (c *DeleteSaleCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
